// Package admin contiene los controllers de la consola.
package admin

import (
	"net/http"

	dto "github.com/dropDatabas3/rbac-admin/internal/http/dto/admin"
	httperrors "github.com/dropDatabas3/rbac-admin/internal/http/errors"
	"github.com/dropDatabas3/rbac-admin/internal/http/helpers"
	svc "github.com/dropDatabas3/rbac-admin/internal/http/services/admin"
)

// Controllers agrupa los controllers del dominio admin.
type Controllers struct {
	Users       *UsersController
	Roles       *RolesController
	Menus       *MenusController
	Departments *DepartmentsController
	Permissions *PermissionsController
}

func NewControllers(s svc.Services) *Controllers {
	return &Controllers{
		Users:       &UsersController{service: s.Users},
		Roles:       &RolesController{service: s.Roles},
		Menus:       &MenusController{service: s.Menus},
		Departments: &DepartmentsController{service: s.Departments},
		Permissions: &PermissionsController{service: s.Permissions},
	}
}

// respond escribe data o el error mapeado.
func respond(w http.ResponseWriter, r *http.Request, data any, err error) {
	if err != nil {
		httperrors.WriteErrorLogged(w, r, err)
		return
	}
	helpers.OK(w, data)
}

// readDelete decodifica {ids:[...]}.
func readDelete(w http.ResponseWriter, r *http.Request) ([]int64, bool) {
	var req dto.DeleteRequest
	if !helpers.ReadJSON(w, r, &req) {
		return nil, false
	}
	return req.IDs, true
}
