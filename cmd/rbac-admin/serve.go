package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/rbac-admin/internal/app"
	"github.com/dropDatabas3/rbac-admin/internal/http/server"
	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"
)

func newServeCmd(o *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx = logger.ToContext(ctx, logger.L())

			c, err := app.Build(ctx, o.cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := c.Close(); err != nil {
					logger.L().Warn("cleanup error", logger.Err(err))
				}
			}()
			c.Start()

			srv := server.New(c.Handler, server.Options{
				Addr:         o.cfg.Server.Addr,
				ReadTimeout:  o.cfg.Server.ReadTimeout,
				WriteTimeout: o.cfg.Server.WriteTimeout,
			})
			return server.Run(ctx, srv, o.cfg.Server.ShutdownTimeout)
		},
	}
}
