package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	ctrl "github.com/dropDatabas3/rbac-admin/internal/http/controllers/auth"
	mw "github.com/dropDatabas3/rbac-admin/internal/http/middlewares"
	"github.com/dropDatabas3/rbac-admin/internal/rate"
)

func registerAuthRoutes(r chi.Router, c *ctrl.Controller, limiter rate.Limiter, key mw.RateKeyFunc) {
	if c == nil {
		return
	}
	r.Route("/auth", func(r chi.Router) {
		r.Method(http.MethodPost, "/signin", mw.Chain(http.HandlerFunc(c.SignIn),
			mw.WithRateLimit(limiter, key),
		))
		r.Post("/signout", c.SignOut)
		r.Post("/menu", c.Menu)
	})
}
