package admin

import (
	"net/http"

	dto "github.com/dropDatabas3/rbac-admin/internal/http/dto/admin"
	"github.com/dropDatabas3/rbac-admin/internal/http/helpers"
	svc "github.com/dropDatabas3/rbac-admin/internal/http/services/admin"
)

type PermissionsController struct {
	service svc.PermissionService
}

// ListRoleResources GET /permission/list-role-resources/{role_id}
func (c *PermissionsController) ListRoleResources(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "role_id")
	if !ok {
		return
	}
	codes, err := c.service.ListRoleResources(r.Context(), id)
	respond(w, r, codes, err)
}

// AssignRoleMenu POST /permission/assign-role-menu
func (c *PermissionsController) AssignRoleMenu(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignRoleMenuRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	respond(w, r, nil, c.service.AssignRoleMenu(r.Context(), req))
}
