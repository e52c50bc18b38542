// Package auth contiene los controllers de /auth.
package auth

import (
	"errors"
	"net/http"

	dtoadmin "github.com/dropDatabas3/rbac-admin/internal/http/dto/admin"
	dto "github.com/dropDatabas3/rbac-admin/internal/http/dto/auth"
	httperrors "github.com/dropDatabas3/rbac-admin/internal/http/errors"
	"github.com/dropDatabas3/rbac-admin/internal/http/helpers"
	svc "github.com/dropDatabas3/rbac-admin/internal/http/services/auth"
	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"
)

type Controller struct {
	service svc.Service
}

func NewController(s svc.Service) *Controller {
	return &Controller{service: s}
}

// SignIn maneja POST /auth/signin. data = token.
func (c *Controller) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	token, err := c.service.SignIn(r.Context(), req)
	if err != nil {
		logger.From(r.Context()).Debug("sign in failed", logger.Layer("controller"), logger.Err(err))
		writeAuthError(w, r, err)
		return
	}
	helpers.OK(w, token)
}

// SignOut maneja POST /auth/signout con el header Authorization.
func (c *Controller) SignOut(w http.ResponseWriter, r *http.Request) {
	if _, err := c.service.SignOut(r.Context(), r.Header.Get("Authorization")); err != nil {
		writeAuthError(w, r, err)
		return
	}
	helpers.OK(w, nil)
}

// Menu maneja POST /auth/menu; el body es la lista de códigos.
func (c *Controller) Menu(w http.ResponseWriter, r *http.Request) {
	var codes []string
	if !helpers.ReadJSON(w, r, &codes) {
		return
	}
	menus, err := c.service.MenusForCodes(r.Context(), codes)
	if err != nil {
		httperrors.WriteErrorLogged(w, r, err)
		return
	}
	helpers.OK(w, dtoadmin.MenusFromDomain(menus))
}

func writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, svc.ErrAuthentication):
		httperrors.WriteError(w, httperrors.ErrInvalidCredentials.WithCause(err))
	case errors.Is(err, svc.ErrMalformedToken):
		httperrors.WriteError(w, httperrors.ErrMalformedToken.WithCause(err))
	default:
		httperrors.WriteErrorLogged(w, r, err)
	}
}
