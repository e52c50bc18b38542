package admin

import (
	"context"

	"github.com/dropDatabas3/rbac-admin/internal/audit"
	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
	dto "github.com/dropDatabas3/rbac-admin/internal/http/dto/admin"
	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"
	"github.com/dropDatabas3/rbac-admin/internal/rbac"
)

type PermissionService interface {
	// ListRoleResources devuelve los códigos de permiso de un rol.
	ListRoleResources(ctx context.Context, roleID int64) ([]string, error)
	// AssignRoleMenu reemplaza los códigos del rol de forma atómica.
	AssignRoleMenu(ctx context.Context, req dto.AssignRoleMenuRequest) error
}

type permissionService struct {
	rbac     repository.RBACRepository
	resolver *rbac.Resolver
}

func NewPermissionService(r repository.RBACRepository, resolver *rbac.Resolver) PermissionService {
	return &permissionService{rbac: r, resolver: resolver}
}

func (s *permissionService) ListRoleResources(ctx context.Context, roleID int64) ([]string, error) {
	codes, err := s.rbac.RolePermCodes(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if codes == nil {
		codes = []string{}
	}
	return codes, nil
}

func (s *permissionService) AssignRoleMenu(ctx context.Context, req dto.AssignRoleMenuRequest) error {
	if err := s.resolver.AssignRolePermissions(ctx, req.RoleID, req.PermCodes); err != nil {
		return err
	}
	audit.Log(ctx, audit.EventPermAssign, logger.RoleID(req.RoleID), logger.PermCodes(req.PermCodes))
	return nil
}
