package admin

import (
	"net/http"

	dto "github.com/dropDatabas3/rbac-admin/internal/http/dto/admin"
	"github.com/dropDatabas3/rbac-admin/internal/http/helpers"
	svc "github.com/dropDatabas3/rbac-admin/internal/http/services/admin"
)

type UsersController struct {
	service svc.UserService
}

// AuthCode GET /user/auth-code/{id}
func (c *UsersController) AuthCode(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	codes, err := c.service.AuthCodes(r.Context(), id)
	respond(w, r, codes, err)
}

// List POST /user/list
func (c *UsersController) List(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterParam[dto.UserSearch]
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	page, err := c.service.List(r.Context(), req)
	respond(w, r, page, err)
}

// Get GET /user/{id}
func (c *UsersController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	u, err := c.service.Get(r.Context(), id)
	respond(w, r, u, err)
}

// Create POST /user/create
func (c *UsersController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	u, err := c.service.Create(r.Context(), req)
	respond(w, r, u, err)
}

// Update PUT /user/update
func (c *UsersController) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateUserRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	u, err := c.service.Update(r.Context(), req)
	respond(w, r, u, err)
}

// ChangePassword PUT /user/psd
func (c *UsersController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangePasswordRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	respond(w, r, nil, c.service.ChangePassword(r.Context(), req))
}

// Delete POST /user/del
func (c *UsersController) Delete(w http.ResponseWriter, r *http.Request) {
	ids, ok := readDelete(w, r)
	if !ok {
		return
	}
	n, err := c.service.Delete(r.Context(), ids)
	respond(w, r, n, err)
}
