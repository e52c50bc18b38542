package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
	dto "github.com/dropDatabas3/rbac-admin/internal/http/dto/admin"
)

type DepartmentService interface {
	Create(ctx context.Context, req dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	List(ctx context.Context, req dto.FilterParam[dto.DepartmentSearch]) (dto.PageResult[dto.DepartmentResponse], error)
	Get(ctx context.Context, id int64) (*dto.DepartmentResponse, error)
	Update(ctx context.Context, req dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	Delete(ctx context.Context, ids []int64) (int64, error)
}

type departmentService struct {
	departments repository.DepartmentRepository
}

func NewDepartmentService(d repository.DepartmentRepository) DepartmentService {
	return &departmentService{departments: d}
}

func (s *departmentService) Create(ctx context.Context, req dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	d := req.ToDomain()
	if err := s.departments.Create(ctx, &d); err != nil {
		return nil, err
	}
	out := dto.DepartmentFromDomain(d)
	return &out, nil
}

func (s *departmentService) List(ctx context.Context, req dto.FilterParam[dto.DepartmentSearch]) (dto.PageResult[dto.DepartmentResponse], error) {
	page := req.Page()
	var f repository.DepartmentFilter
	if req.Filters != nil {
		f.DepartmentName = strings.TrimSpace(deref(req.Filters.DepartmentName))
	}
	rows, total, err := s.departments.List(ctx, f, page)
	if err != nil {
		return dto.PageResult[dto.DepartmentResponse]{}, err
	}
	list := make([]dto.DepartmentResponse, 0, len(rows))
	for _, d := range rows {
		list = append(list, dto.DepartmentFromDomain(d))
	}
	return dto.NewPageResult(page, list, total), nil
}

func (s *departmentService) Get(ctx context.Context, id int64) (*dto.DepartmentResponse, error) {
	d, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.DepartmentFromDomain(*d)
	return &out, nil
}

func (s *departmentService) Update(ctx context.Context, req dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if req.ID <= 0 {
		return nil, fmt.Errorf("%w: id is required", repository.ErrInvalidInput)
	}
	d := req.ToDomain()
	d.ID = req.ID
	if err := s.departments.Update(ctx, &d); err != nil {
		return nil, err
	}
	return s.Get(ctx, req.ID)
}

func (s *departmentService) Delete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: ids is empty", repository.ErrInvalidInput)
	}
	return s.departments.Delete(ctx, ids)
}
