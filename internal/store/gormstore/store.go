// Package gormstore implements the repository interfaces on top of gorm.
//
// Soft-deleted rows are filtered by gorm's DeletedAt scope. Every operation
// that rewrites a join table runs inside db.Transaction, so a failure rolls
// back the delete together with the inserts.
package gormstore

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
)

type Store struct {
	db  *gorm.DB
	now func() time.Time
}

func New(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) Users() repository.UserRepository { return &userRepo{s} }
func (s *Store) Roles() repository.RoleRepository { return &roleRepo{s} }
func (s *Store) RBAC() repository.RBACRepository { return &rbacRepo{s} }
func (s *Store) Menus() repository.MenuRepository { return &menuRepo{s} }
func (s *Store) Departments() repository.DepartmentRepository { return &departmentRepo{s} }

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// AutoMigrate creates or updates the tables from the models.
func (s *Store) AutoMigrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(Models()...)
}

func (s *Store) stamp() time.Time { return s.now().UTC() }

// paginate applies offset/limit and returns the normalized page.
func paginate(q *gorm.DB, p repository.Page) *gorm.DB {
	p = p.Normalize()
	return q.Offset(p.Offset()).Limit(p.Size)
}

func likeContains(s string) string {
	return "%" + s + "%"
}
