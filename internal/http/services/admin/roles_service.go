package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/dropDatabas3/rbac-admin/internal/audit"
	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
	dto "github.com/dropDatabas3/rbac-admin/internal/http/dto/admin"
	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"
)

type RoleService interface {
	Create(ctx context.Context, req dto.CreateRoleRequest) (*dto.RoleResponse, error)
	List(ctx context.Context, req dto.FilterParam[dto.RoleSearch]) (dto.PageResult[dto.RoleResponse], error)
	Get(ctx context.Context, id int64) (*dto.RoleResponse, error)
	Update(ctx context.Context, req dto.UpdateRoleRequest) (*dto.RoleResponse, error)
	// Delete también borra los permisos y vínculos de usuario del rol.
	Delete(ctx context.Context, ids []int64) (int64, error)
}

type roleService struct {
	roles repository.RoleRepository
}

func NewRoleService(roles repository.RoleRepository) RoleService {
	return &roleService{roles: roles}
}

func (s *roleService) Create(ctx context.Context, req dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	req.RoleName = strings.TrimSpace(req.RoleName)
	if req.RoleName == "" {
		return nil, fmt.Errorf("%w: roleName is required", repository.ErrInvalidInput)
	}
	r := &repository.Role{Name: req.RoleName, Desc: req.RoleDesc}
	if err := s.roles.Create(ctx, r); err != nil {
		return nil, err
	}
	logger.From(ctx).Info("role created", logger.Component("admin.roles"), logger.RoleID(r.ID))
	out := dto.RoleFromDomain(*r)
	return &out, nil
}

func (s *roleService) List(ctx context.Context, req dto.FilterParam[dto.RoleSearch]) (dto.PageResult[dto.RoleResponse], error) {
	page := req.Page()
	var f repository.RoleFilter
	if req.Filters != nil {
		f.RoleName = strings.TrimSpace(deref(req.Filters.RoleName))
		f.RoleDesc = strings.TrimSpace(deref(req.Filters.RoleDesc))
	}
	rows, total, err := s.roles.List(ctx, f, page)
	if err != nil {
		return dto.PageResult[dto.RoleResponse]{}, err
	}
	list := make([]dto.RoleResponse, 0, len(rows))
	for _, r := range rows {
		list = append(list, dto.RoleFromDomain(r))
	}
	return dto.NewPageResult(page, list, total), nil
}

func (s *roleService) Get(ctx context.Context, id int64) (*dto.RoleResponse, error) {
	r, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.RoleFromDomain(*r)
	return &out, nil
}

func (s *roleService) Update(ctx context.Context, req dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	req.RoleName = strings.TrimSpace(req.RoleName)
	if req.ID <= 0 || req.RoleName == "" {
		return nil, fmt.Errorf("%w: id and roleName are required", repository.ErrInvalidInput)
	}
	if err := s.roles.Update(ctx, &repository.Role{ID: req.ID, Name: req.RoleName, Desc: req.RoleDesc}); err != nil {
		return nil, err
	}
	return s.Get(ctx, req.ID)
}

func (s *roleService) Delete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: ids is empty", repository.ErrInvalidInput)
	}
	n, err := s.roles.Delete(ctx, ids)
	if err != nil {
		return 0, err
	}
	logger.From(ctx).Info("roles deleted", logger.Component("admin.roles"), logger.IDs(ids), logger.Count(int(n)))
	audit.Log(ctx, audit.EventRoleDelete, logger.IDs(ids), logger.Count(int(n)))
	return n, nil
}
