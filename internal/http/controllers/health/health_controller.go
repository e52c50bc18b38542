// Package health expone liveness y readiness.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
	httperrors "github.com/dropDatabas3/rbac-admin/internal/http/errors"
	"github.com/dropDatabas3/rbac-admin/internal/http/helpers"
)

type Controller struct {
	db      repository.Pinger
	timeout time.Duration
}

func NewController(db repository.Pinger) *Controller {
	return &Controller{db: db, timeout: 2 * time.Second}
}

// Live GET /healthz
func (c *Controller) Live(w http.ResponseWriter, _ *http.Request) {
	helpers.OK(w, map[string]string{"status": "ok"})
}

// Ready GET /readyz; 503 si la base no responde.
func (c *Controller) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
	defer cancel()
	if err := c.db.Ping(ctx); err != nil {
		httperrors.WriteError(w, httperrors.ErrServiceUnavailable.WithCause(err))
		return
	}
	helpers.OK(w, map[string]string{"status": "ready"})
}
