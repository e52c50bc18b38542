// Package server corre el http.Server con apagado ordenado.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"
)

type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func New(h http.Handler, o Options) *http.Server {
	return &http.Server{
		Addr:              o.Addr,
		Handler:           h,
		ReadTimeout:       o.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      o.WriteTimeout,
	}
}

// Run sirve hasta que ctx se cancela y luego hace Shutdown dentro de
// shutdownTimeout. ErrServerClosed no se reporta.
func Run(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	log := logger.From(ctx).With(logger.Component("http"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", logger.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
