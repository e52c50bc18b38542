package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
)

type roleRepo struct{ s *Store }

func (r *roleRepo) Create(ctx context.Context, in *repository.Role) error {
	row := Role{RoleName: in.Name, RoleDesc: in.Desc, Timestamps: Timestamps{CreatedAt: r.s.stamp()}}
	if err := r.s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translate("role.create", err)
	}
	in.ID = row.ID
	in.CreatedAt = row.CreatedAt
	return nil
}

func (r *roleRepo) GetByID(ctx context.Context, id int64) (*repository.Role, error) {
	var row Role
	if err := r.s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translate("role.get", err)
	}
	out := roleToDomain(row)
	return &out, nil
}

func (r *roleRepo) List(ctx context.Context, f repository.RoleFilter, p repository.Page) ([]repository.Role, int64, error) {
	q := r.s.db.WithContext(ctx).Model(&Role{})
	if f.RoleName != "" {
		q = q.Where("role_name LIKE ?", likeContains(f.RoleName))
	}
	if f.RoleDesc != "" {
		q = q.Where("role_desc LIKE ?", likeContains(f.RoleDesc))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate("role.list", err)
	}
	var rows []Role
	if err := paginate(q.Order("id"), p).Find(&rows).Error; err != nil {
		return nil, 0, translate("role.list", err)
	}
	out := make([]repository.Role, 0, len(rows))
	for _, row := range rows {
		out = append(out, roleToDomain(row))
	}
	return out, total, nil
}

func (r *roleRepo) Update(ctx context.Context, in *repository.Role) error {
	now := r.s.stamp()
	res := r.s.db.WithContext(ctx).Model(&Role{}).Where("id = ?", in.ID).Updates(map[string]any{
		"role_name":  in.Name,
		"role_desc":  in.Desc,
		"updated_at": now,
	})
	if res.Error != nil {
		return translate("role.update", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("role.update", gorm.ErrRecordNotFound)
	}
	in.UpdatedAt = &now
	return nil
}

// Delete drops the roles and, in the same transaction, every perm and user
// link pointing at them.
func (r *roleRepo) Delete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var n int64
	err := r.s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("role_id IN ?", ids).Delete(&RolePerm{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("role_id IN ?", ids).Delete(&UserRole{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&Role{})
		n = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return 0, translate("role.delete", err)
	}
	return n, nil
}

func roleToDomain(r Role) repository.Role {
	return repository.Role{
		ID:        r.ID,
		Name:      r.RoleName,
		Desc:      r.RoleDesc,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
