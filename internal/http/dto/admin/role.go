package admin

import (
	"time"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
)

type CreateRoleRequest struct {
	RoleName string `json:"roleName"`
	RoleDesc string `json:"roleDesc"`
}

type UpdateRoleRequest struct {
	ID int64 `json:"id"`
	CreateRoleRequest
}

type RoleSearch struct {
	RoleName *string `json:"roleName,omitempty"`
	RoleDesc *string `json:"roleDesc,omitempty"`
}

type RoleResponse struct {
	ID        int64      `json:"id"`
	RoleName  string     `json:"roleName"`
	RoleDesc  string     `json:"roleDesc"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

func RoleFromDomain(r repository.Role) RoleResponse {
	return RoleResponse{ID: r.ID, RoleName: r.Name, RoleDesc: r.Desc, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}
