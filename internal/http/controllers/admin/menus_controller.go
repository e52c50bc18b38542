package admin

import (
	"net/http"

	dto "github.com/dropDatabas3/rbac-admin/internal/http/dto/admin"
	"github.com/dropDatabas3/rbac-admin/internal/http/helpers"
	svc "github.com/dropDatabas3/rbac-admin/internal/http/services/admin"
)

type MenusController struct {
	service svc.MenuService
}

func (c *MenusController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMenuRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	out, err := c.service.Create(r.Context(), req)
	respond(w, r, out, err)
}

func (c *MenusController) List(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterParam[dto.MenuSearch]
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	page, err := c.service.List(r.Context(), req)
	respond(w, r, page, err)
}

func (c *MenusController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	out, err := c.service.Get(r.Context(), id)
	respond(w, r, out, err)
}

func (c *MenusController) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateMenuRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	out, err := c.service.Update(r.Context(), req)
	respond(w, r, out, err)
}

func (c *MenusController) Delete(w http.ResponseWriter, r *http.Request) {
	ids, ok := readDelete(w, r)
	if !ok {
		return
	}
	n, err := c.service.Delete(r.Context(), ids)
	respond(w, r, n, err)
}
