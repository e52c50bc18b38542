// Package gormlog adapta el logger de gorm a zap.
package gormlog

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"
)

// Logger implementa gormlogger.Interface escribiendo en el logger del contexto.
type Logger struct {
	Level         gormlogger.LogLevel
	SlowThreshold time.Duration
}

func New(level string, slow time.Duration) *Logger {
	l := &Logger{Level: gormlogger.Warn, SlowThreshold: slow}
	switch level {
	case "debug":
		l.Level = gormlogger.Info
	case "error":
		l.Level = gormlogger.Error
	case "silent":
		l.Level = gormlogger.Silent
	}
	if l.SlowThreshold <= 0 {
		l.SlowThreshold = 200 * time.Millisecond
	}
	return l
}

func (l *Logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *l
	cp.Level = level
	return &cp
}

func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	if l.Level >= gormlogger.Info {
		l.log(ctx).Sugar().Infof(msg, args...)
	}
}

func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	if l.Level >= gormlogger.Warn {
		l.log(ctx).Sugar().Warnf(msg, args...)
	}
}

func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	if l.Level >= gormlogger.Error {
		l.log(ctx).Sugar().Errorf(msg, args...)
	}
}

func (l *Logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.Level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && l.Level >= gormlogger.Error && !errors.Is(err, gormlogger.ErrRecordNotFound):
		sql, rows := fc()
		l.log(ctx).Error("sql failed", zap.String("sql", sql), zap.Int64("rows", rows),
			logger.DurationMs(elapsed.Milliseconds()), logger.Err(err))
	case elapsed > l.SlowThreshold && l.Level >= gormlogger.Warn:
		sql, rows := fc()
		l.log(ctx).Warn("slow sql", zap.String("sql", sql), zap.Int64("rows", rows),
			logger.DurationMs(elapsed.Milliseconds()))
	case l.Level >= gormlogger.Info:
		sql, rows := fc()
		l.log(ctx).Debug("sql", zap.String("sql", sql), zap.Int64("rows", rows),
			logger.DurationMs(elapsed.Milliseconds()))
	}
}

func (l *Logger) log(ctx context.Context) *zap.Logger {
	return logger.From(ctx).WithOptions(zap.AddCallerSkip(2)).With(logger.Layer("repository"))
}
