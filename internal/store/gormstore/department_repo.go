package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
)

type departmentRepo struct{ s *Store }

func (r *departmentRepo) Create(ctx context.Context, in *repository.Department) error {
	row := Department{
		FatherID:       in.FatherID,
		DepartmentName: in.DepartmentName,
		OrderNum:       in.OrderNum,
		State:          in.State,
		Timestamps:     Timestamps{CreatedAt: r.s.stamp()},
	}
	if err := r.s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translate("department.create", err)
	}
	in.ID = row.ID
	in.CreatedAt = row.CreatedAt
	return nil
}

func (r *departmentRepo) GetByID(ctx context.Context, id int64) (*repository.Department, error) {
	var row Department
	if err := r.s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translate("department.get", err)
	}
	out := departmentToDomain(row)
	return &out, nil
}

func (r *departmentRepo) List(ctx context.Context, f repository.DepartmentFilter, p repository.Page) ([]repository.Department, int64, error) {
	q := r.s.db.WithContext(ctx).Model(&Department{})
	if f.DepartmentName != "" {
		q = q.Where("department_name LIKE ?", likeContains(f.DepartmentName))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate("department.list", err)
	}
	var rows []Department
	if err := paginate(q.Order("order_num").Order("id"), p).Find(&rows).Error; err != nil {
		return nil, 0, translate("department.list", err)
	}
	out := make([]repository.Department, 0, len(rows))
	for _, d := range rows {
		out = append(out, departmentToDomain(d))
	}
	return out, total, nil
}

func (r *departmentRepo) Update(ctx context.Context, in *repository.Department) error {
	now := r.s.stamp()
	res := r.s.db.WithContext(ctx).Model(&Department{}).Where("id = ?", in.ID).Updates(map[string]any{
		"father_id":       in.FatherID,
		"department_name": in.DepartmentName,
		"order_num":       in.OrderNum,
		"state":           in.State,
		"updated_at":      now,
	})
	if res.Error != nil {
		return translate("department.update", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("department.update", gorm.ErrRecordNotFound)
	}
	in.UpdatedAt = &now
	return nil
}

func (r *departmentRepo) Delete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.s.db.WithContext(ctx).Where("id IN ?", ids).Delete(&Department{})
	if res.Error != nil {
		return 0, translate("department.delete", res.Error)
	}
	return res.RowsAffected, nil
}

func departmentToDomain(d Department) repository.Department {
	return repository.Department{
		ID:             d.ID,
		FatherID:       d.FatherID,
		DepartmentName: d.DepartmentName,
		OrderNum:       d.OrderNum,
		State:          d.State,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
