package router

import (
	"github.com/go-chi/chi/v5"

	ctrl "github.com/dropDatabas3/rbac-admin/internal/http/controllers/health"
	"github.com/dropDatabas3/rbac-admin/internal/metrics"
)

// /healthz, /readyz y /metrics son públicos.
func registerHealthRoutes(r chi.Router, c *ctrl.Controller, m *metrics.Metrics) {
	if c != nil {
		r.Get("/healthz", c.Live)
		r.Get("/readyz", c.Ready)
	}
	if m != nil {
		r.Method("GET", "/metrics", m.Handler())
	}
}
