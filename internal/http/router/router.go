// Package router arma el árbol de rutas chi.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	adminctrl "github.com/dropDatabas3/rbac-admin/internal/http/controllers/admin"
	authctrl "github.com/dropDatabas3/rbac-admin/internal/http/controllers/auth"
	healthctrl "github.com/dropDatabas3/rbac-admin/internal/http/controllers/health"
	httperrors "github.com/dropDatabas3/rbac-admin/internal/http/errors"
	mw "github.com/dropDatabas3/rbac-admin/internal/http/middlewares"
	"github.com/dropDatabas3/rbac-admin/internal/jwt"
	"github.com/dropDatabas3/rbac-admin/internal/metrics"
	"github.com/dropDatabas3/rbac-admin/internal/rate"
)

// PublicPaths no pasan por la validación del bearer.
var PublicPaths = []string{"/auth/signin", "/healthz", "/readyz", "/metrics"}

// Deps contiene todas las dependencias del router.
type Deps struct {
	Issuer *jwt.Issuer

	Auth   *authctrl.Controller
	Admin  *adminctrl.Controllers
	Health *healthctrl.Controller

	Metrics     *metrics.Metrics // opcional
	RateLimiter rate.Limiter     // opcional, sólo /auth/signin
	RateKey     mw.RateKeyFunc   // nil usa RemoteAddr
	CORSOrigins []string
}

// New devuelve el handler raíz.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		mw.WithRecover(),
		mw.WithRequestID(),
		mw.WithLogging(),
		mw.WithMetrics(d.Metrics),
		mw.WithSecurityHeaders(),
		mw.WithCORS(d.CORSOrigins),
		mw.RequireAuth(d.Issuer, PublicPaths...),
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
	})

	registerHealthRoutes(r, d.Health, d.Metrics)
	registerAuthRoutes(r, d.Auth, d.RateLimiter, d.RateKey)
	if d.Admin != nil {
		registerAdminRoutes(r, d.Admin)
	}
	return r
}
