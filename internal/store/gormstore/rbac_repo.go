package gormstore

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
)

type rbacRepo struct{ s *Store }

var _ repository.RBACRepository = (*rbacRepo)(nil)

func (r *rbacRepo) UserRoleIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.s.db.WithContext(ctx).Model(&UserRole{}).
		Where("user_id = ?", userID).
		Distinct().
		Order("role_id").
		Pluck("role_id", &ids).Error
	if err != nil {
		return nil, translate("rbac.user_roles", err)
	}
	return ids, nil
}

func (r *rbacRepo) PermCodesByRoles(ctx context.Context, roleIDs []int64) ([]string, error) {
	if len(roleIDs) == 0 {
		return []string{}, nil
	}
	var codes []string
	err := r.s.db.WithContext(ctx).Model(&RolePerm{}).
		Where("role_id IN ?", roleIDs).
		Distinct().
		Order("perm_code").
		Pluck("perm_code", &codes).Error
	if err != nil {
		return nil, translate("rbac.perm_codes", err)
	}
	return codes, nil
}

func (r *rbacRepo) RolePermCodes(ctx context.Context, roleID int64) ([]string, error) {
	var codes []string
	err := r.s.db.WithContext(ctx).Model(&RolePerm{}).
		Where("role_id = ?", roleID).
		Order("id").
		Pluck("perm_code", &codes).Error
	if err != nil {
		return nil, translate("rbac.role_perms", err)
	}
	return codes, nil
}

func (r *rbacRepo) ReplaceRolePerms(ctx context.Context, roleID int64, codes []string) error {
	codes = uniqueStrings(codes)
	now := r.s.stamp()
	err := r.s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("role_id = ?", roleID).Delete(&RolePerm{}).Error; err != nil {
			return err
		}
		if len(codes) == 0 {
			return nil
		}
		rows := make([]RolePerm, 0, len(codes))
		for _, c := range codes {
			rows = append(rows, RolePerm{RoleID: roleID, PermCode: c, Timestamps: Timestamps{CreatedAt: now}})
		}
		return tx.Create(&rows).Error
	})
	return translate("rbac.assign", err)
}

// uniqueStrings drops blanks and duplicates, keeping first-seen order.
func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func uniqueInt64(in []int64) []int64 {
	seen := make(map[int64]struct{}, len(in))
	out := make([]int64, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
