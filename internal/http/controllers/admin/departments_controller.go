package admin

import (
	"net/http"

	dto "github.com/dropDatabas3/rbac-admin/internal/http/dto/admin"
	"github.com/dropDatabas3/rbac-admin/internal/http/helpers"
	svc "github.com/dropDatabas3/rbac-admin/internal/http/services/admin"
)

type DepartmentsController struct {
	service svc.DepartmentService
}

func (c *DepartmentsController) List(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterParam[dto.DepartmentSearch]
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	page, err := c.service.List(r.Context(), req)
	respond(w, r, page, err)
}

func (c *DepartmentsController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	out, err := c.service.Create(r.Context(), req)
	respond(w, r, out, err)
}

func (c *DepartmentsController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	out, err := c.service.Get(r.Context(), id)
	respond(w, r, out, err)
}

func (c *DepartmentsController) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDepartmentRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	out, err := c.service.Update(r.Context(), req)
	respond(w, r, out, err)
}

func (c *DepartmentsController) Delete(w http.ResponseWriter, r *http.Request) {
	ids, ok := readDelete(w, r)
	if !ok {
		return
	}
	n, err := c.service.Delete(r.Context(), ids)
	respond(w, r, n, err)
}
