package gormstore

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
)

type userRepo struct{ s *Store }

func (r *userRepo) GetCredential(ctx context.Context, userName string) (*repository.Credential, error) {
	var u User
	err := r.s.db.WithContext(ctx).
		Select("id", "password").
		Where("user_name = ?", userName).
		First(&u).Error
	if err != nil {
		return nil, translate("user.credential", err)
	}
	return &repository.Credential{UserID: u.ID, PasswordHash: u.Password}, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*repository.User, error) {
	var u User
	if err := r.s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate("user.get", err)
	}
	out := userToDomain(u)
	return &out, nil
}

func (r *userRepo) List(ctx context.Context, f repository.UserFilter, p repository.Page) ([]repository.User, int64, error) {
	q := r.s.db.WithContext(ctx).Model(&User{})
	if f.UserName != "" {
		q = q.Where("user_name LIKE ?", likeContains(f.UserName))
	}
	if f.DepartmentID != nil {
		q = q.Where("department_id = ?", *f.DepartmentID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate("user.list", err)
	}
	var rows []User
	if err := paginate(q.Order("id"), p).Find(&rows).Error; err != nil {
		return nil, 0, translate("user.list", err)
	}
	out := make([]repository.User, 0, len(rows))
	for _, u := range rows {
		out = append(out, userToDomain(u))
	}
	return out, total, nil
}

func (r *userRepo) Create(ctx context.Context, u *repository.User, roleIDs []int64) error {
	row := userFromDomain(*u)
	row.CreatedAt = r.s.stamp()

	err := r.s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return insertUserRoles(tx, row.ID, roleIDs, row.CreatedAt)
	})
	if err != nil {
		return translate("user.create", err)
	}
	u.ID = row.ID
	u.CreatedAt = row.CreatedAt
	return nil
}

func (r *userRepo) Update(ctx context.Context, u *repository.User, roleIDs []int64) error {
	now := r.s.stamp()
	err := r.s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&User{}).Where("id = ?", u.ID).Updates(map[string]any{
			"user_name":     u.UserName,
			"sex":           u.Sex,
			"available":     u.Available,
			"telephone":     u.Telephone,
			"mobile":        u.Mobile,
			"email":         u.Email,
			"department_id": u.DepartmentID,
			"updated_at":    now,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Unscoped().Where("user_id = ?", u.ID).Delete(&UserRole{}).Error; err != nil {
			return err
		}
		return insertUserRoles(tx, u.ID, roleIDs, now)
	})
	if err != nil {
		return translate("user.update", err)
	}
	u.UpdatedAt = &now
	return nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	res := r.s.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(map[string]any{
		"password":   hash,
		"updated_at": r.s.stamp(),
	})
	if res.Error != nil {
		return translate("user.password", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("user.password", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *userRepo) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	err := r.s.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		UpdateColumn("last_login_time", at.UTC()).Error
	return translate("user.touch", err)
}

func (r *userRepo) Delete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var n int64
	err := r.s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id IN ?", ids).Delete(&UserRole{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&User{})
		n = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return 0, translate("user.delete", err)
	}
	return n, nil
}

func insertUserRoles(tx *gorm.DB, userID int64, roleIDs []int64, at time.Time) error {
	roleIDs = uniqueInt64(roleIDs)
	if len(roleIDs) == 0 {
		return nil
	}
	rows := make([]UserRole, 0, len(roleIDs))
	for _, rid := range roleIDs {
		rows = append(rows, UserRole{UserID: userID, RoleID: rid, Timestamps: Timestamps{CreatedAt: at}})
	}
	return tx.Create(&rows).Error
}

func userToDomain(u User) repository.User {
	return repository.User{
		ID:            u.ID,
		UserName:      u.UserName,
		PasswordHash:  u.Password,
		Sex:           u.Sex,
		Available:     u.Available,
		Telephone:     u.Telephone,
		Mobile:        u.Mobile,
		Email:         u.Email,
		DepartmentID:  u.DepartmentID,
		LastLoginTime: u.LastLoginTime,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func userFromDomain(u repository.User) User {
	return User{
		ID:           u.ID,
		UserName:     u.UserName,
		Password:     u.PasswordHash,
		Sex:          u.Sex,
		Available:    u.Available,
		Telephone:    u.Telephone,
		Mobile:       u.Mobile,
		Email:        u.Email,
		DepartmentID: u.DepartmentID,
	}
}
