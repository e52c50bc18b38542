package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
	dto "github.com/dropDatabas3/rbac-admin/internal/http/dto/admin"
)

type MenuService interface {
	Create(ctx context.Context, req dto.CreateMenuRequest) (*dto.MenuResponse, error)
	List(ctx context.Context, req dto.FilterParam[dto.MenuSearch]) (dto.PageResult[dto.MenuResponse], error)
	Get(ctx context.Context, id int64) (*dto.MenuResponse, error)
	Update(ctx context.Context, req dto.UpdateMenuRequest) (*dto.MenuResponse, error)
	Delete(ctx context.Context, ids []int64) (int64, error)
}

type menuService struct {
	menus repository.MenuRepository
}

func NewMenuService(menus repository.MenuRepository) MenuService {
	return &menuService{menus: menus}
}

func validateMenu(in dto.CreateMenuRequest) error {
	if strings.TrimSpace(in.MenuName) == "" || strings.TrimSpace(in.Code) == "" {
		return fmt.Errorf("%w: menuName and code are required", repository.ErrInvalidInput)
	}
	return nil
}

func (s *menuService) Create(ctx context.Context, req dto.CreateMenuRequest) (*dto.MenuResponse, error) {
	if err := validateMenu(req); err != nil {
		return nil, err
	}
	m := req.ToDomain()
	if err := s.menus.Create(ctx, &m); err != nil {
		return nil, err
	}
	out := dto.MenuFromDomain(m)
	return &out, nil
}

func (s *menuService) List(ctx context.Context, req dto.FilterParam[dto.MenuSearch]) (dto.PageResult[dto.MenuResponse], error) {
	page := req.Page()
	var f repository.MenuFilter
	if req.Filters != nil {
		f.MenuName = strings.TrimSpace(deref(req.Filters.MenuName))
		f.Visible = req.Filters.Visible
	}
	rows, total, err := s.menus.List(ctx, f, page)
	if err != nil {
		return dto.PageResult[dto.MenuResponse]{}, err
	}
	return dto.NewPageResult(page, dto.MenusFromDomain(rows), total), nil
}

func (s *menuService) Get(ctx context.Context, id int64) (*dto.MenuResponse, error) {
	m, err := s.menus.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.MenuFromDomain(*m)
	return &out, nil
}

func (s *menuService) Update(ctx context.Context, req dto.UpdateMenuRequest) (*dto.MenuResponse, error) {
	if req.ID <= 0 {
		return nil, fmt.Errorf("%w: id is required", repository.ErrInvalidInput)
	}
	if err := validateMenu(req.CreateMenuRequest); err != nil {
		return nil, err
	}
	m := req.ToDomain()
	m.ID = req.ID
	if err := s.menus.Update(ctx, &m); err != nil {
		return nil, err
	}
	return s.Get(ctx, req.ID)
}

func (s *menuService) Delete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: ids is empty", repository.ErrInvalidInput)
	}
	return s.menus.Delete(ctx, ids)
}
