// Package bootstrap crea el primer administrador.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"
	"github.com/dropDatabas3/rbac-admin/internal/rbac"
	"github.com/dropDatabas3/rbac-admin/internal/security/password"
)

// AdminBootstrapConfig datos del admin a sembrar.
type AdminBootstrapConfig struct {
	UserName  string
	Password  string
	RoleName  string   // default "admin"
	PermCodes []string // se asignan al rol
	Params    password.Params
}

type Deps struct {
	Users    repository.UserRepository
	Roles    repository.RoleRepository
	Resolver *rbac.Resolver
}

// Result describe lo que hizo EnsureAdmin.
type Result struct {
	UserID      int64
	RoleID      int64
	UserCreated bool
	RoleCreated bool
}

// EnsureAdmin crea el rol y el usuario si faltan. Si el usuario ya existe no
// toca su password; sólo reasigna los perm codes del rol cuando hay alguno.
func EnsureAdmin(ctx context.Context, d Deps, cfg AdminBootstrapConfig) (*Result, error) {
	cfg.UserName = strings.TrimSpace(cfg.UserName)
	if cfg.UserName == "" {
		return nil, fmt.Errorf("%w: user name is required", repository.ErrInvalidInput)
	}
	if cfg.RoleName == "" {
		cfg.RoleName = "admin"
	}
	if cfg.Params == (password.Params{}) {
		cfg.Params = password.Default
	}
	log := logger.From(ctx).With(logger.Component("bootstrap"), logger.UserName(cfg.UserName))
	res := &Result{}

	// 1. Rol
	role, err := findRole(ctx, d.Roles, cfg.RoleName)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrNotFound):
		role = &repository.Role{Name: cfg.RoleName, Desc: "bootstrap administrator"}
		if err := d.Roles.Create(ctx, role); err != nil {
			return nil, fmt.Errorf("create role: %w", err)
		}
		res.RoleCreated = true
	default:
		return nil, err
	}
	res.RoleID = role.ID

	if len(cfg.PermCodes) > 0 {
		if err := d.Resolver.AssignRolePermissions(ctx, role.ID, cfg.PermCodes); err != nil {
			return nil, fmt.Errorf("assign perms: %w", err)
		}
	}

	// 2. Usuario
	cred, err := d.Users.GetCredential(ctx, cfg.UserName)
	if err == nil {
		res.UserID = cred.UserID
		log.Info("admin user already present, skipping")
		return res, nil
	}
	if !repository.IsNotFound(err) {
		return nil, fmt.Errorf("check existing admin: %w", err)
	}

	if cfg.Password == "" {
		return nil, fmt.Errorf("%w: password is required", repository.ErrInvalidInput)
	}
	hash, err := password.Hash(cfg.Params, cfg.Password)
	if err != nil {
		return nil, err
	}
	u := &repository.User{UserName: cfg.UserName, PasswordHash: hash, Available: true}
	if err := d.Users.Create(ctx, u, []int64{role.ID}); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	res.UserID = u.ID
	res.UserCreated = true
	log.Info("admin user created", logger.UserID(u.ID), logger.RoleID(role.ID))
	return res, nil
}

// findRole busca por nombre exacto; el filtro del repo es "contains".
func findRole(ctx context.Context, roles repository.RoleRepository, name string) (*repository.Role, error) {
	list, _, err := roles.List(ctx, repository.RoleFilter{RoleName: name}, repository.Page{Index: 1, Size: 100})
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Name == name {
			return &list[i], nil
		}
	}
	return nil, repository.ErrNotFound
}
