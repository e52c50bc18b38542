// Package logger wraps a process-wide zap logger and lets each request carry
// its own scoped copy through the context.
//
// Init is called once from cmd; everything else asks for a logger with
// From(ctx), which falls back to the singleton when no request logger was
// attached:
//
//	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("SignIn"))
//	log.Info("signed in", logger.UserName(name))
//
// "dev" writes colored console output, "prod" writes JSON. When Config.File
// is set the output goes to a rotating file instead of stderr.
package logger
