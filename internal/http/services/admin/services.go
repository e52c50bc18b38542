// Package admin contiene los services de la consola: usuarios, roles,
// menús, departamentos y asignación de permisos.
package admin

import (
	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
	"github.com/dropDatabas3/rbac-admin/internal/rbac"
	"github.com/dropDatabas3/rbac-admin/internal/security/password"
)

// Deps contiene las dependencias para crear los services admin.
type Deps struct {
	Users       repository.UserRepository
	Roles       repository.RoleRepository
	RBAC        repository.RBACRepository
	Menus       repository.MenuRepository
	Departments repository.DepartmentRepository
	Resolver    *rbac.Resolver

	// Policy valida passwords nuevos. Zero value usa password.DefaultPolicy.
	Policy password.Policy
	// HashParams de argon2id. Zero value usa password.Default.
	HashParams password.Params
}

// Services agrupa todos los services del dominio admin.
type Services struct {
	Users       UserService
	Roles       RoleService
	Menus       MenuService
	Departments DepartmentService
	Permissions PermissionService
}

func NewServices(d Deps) Services {
	if d.Policy == (password.Policy{}) {
		d.Policy = password.DefaultPolicy
	}
	if d.HashParams == (password.Params{}) {
		d.HashParams = password.Default
	}
	return Services{
		Users:       NewUserService(d),
		Roles:       NewRoleService(d.Roles),
		Menus:       NewMenuService(d.Menus),
		Departments: NewDepartmentService(d.Departments),
		Permissions: NewPermissionService(d.RBAC, d.Resolver),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
