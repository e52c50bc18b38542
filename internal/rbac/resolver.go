// Package rbac resolves users to roles, roles to permission codes and
// permission codes to the menus they unlock.
package rbac

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"
)

// sharedQueryTimeout acota la query compartida por singleflight.
const sharedQueryTimeout = 10 * time.Second

type Resolver struct {
	rbac  repository.RBACRepository
	menus repository.MenuRepository
	sf    singleflight.Group
}

func NewResolver(rbac repository.RBACRepository, menus repository.MenuRepository) *Resolver {
	return &Resolver{rbac: rbac, menus: menus}
}

// ResolveUserRoles returns the role ids linked to the user. A user without
// roles yields an empty slice.
func (r *Resolver) ResolveUserRoles(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := r.rbac.UserRoleIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve user roles: %w", err)
	}
	return ids, nil
}

// ResolvePermissionCodes returns the union of the perm codes of roleIDs,
// without duplicates. Concurrent calls for the same set share one query.
func (r *Resolver) ResolvePermissionCodes(ctx context.Context, roleIDs []int64) ([]string, error) {
	if len(roleIDs) == 0 {
		return []string{}, nil
	}

	// La query compartida no hereda la cancelación del primer caller; cada
	// caller espera con su propio ctx.
	ch := r.sf.DoChan(roleSetKey(roleIDs), func() (any, error) {
		qctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedQueryTimeout)
		defer cancel()
		return r.rbac.PermCodesByRoles(qctx, roleIDs)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("resolve permission codes: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("resolve permission codes: %w", res.Err)
		}
		if res.Shared {
			logger.From(ctx).Debug("permission codes shared", logger.RoleIDs(roleIDs))
		}
		return dedupe(res.Val.([]string)), nil
	}
}

// ResolveMenusByAuthCodes returns the menus whose code is one of codes.
func (r *Resolver) ResolveMenusByAuthCodes(ctx context.Context, codes []string) ([]repository.Menu, error) {
	if len(codes) == 0 {
		return []repository.Menu{}, nil
	}
	menus, err := r.menus.ListByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("resolve menus: %w", err)
	}
	return menus, nil
}

// AssignRolePermissions replaces the perm codes of roleID. The replace runs
// in a single transaction; on error nothing is committed.
func (r *Resolver) AssignRolePermissions(ctx context.Context, roleID int64, codes []string) error {
	if roleID <= 0 {
		return fmt.Errorf("assign role permissions: role id %d: %w", roleID, repository.ErrInvalidInput)
	}
	clean := make([]string, 0, len(codes))
	for _, c := range codes {
		if c = strings.TrimSpace(c); c != "" {
			clean = append(clean, c)
		}
	}
	if err := r.rbac.ReplaceRolePerms(ctx, roleID, dedupe(clean)); err != nil {
		return fmt.Errorf("assign role permissions: %w", err)
	}
	logger.From(ctx).Info("role permissions replaced",
		logger.Component("rbac"), logger.RoleID(roleID), logger.Count(len(clean)))
	return nil
}

// UserPermissionCodes chains ResolveUserRoles and ResolvePermissionCodes.
func (r *Resolver) UserPermissionCodes(ctx context.Context, userID int64) ([]string, error) {
	roles, err := r.ResolveUserRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	return r.ResolvePermissionCodes(ctx, roles)
}

func roleSetKey(ids []int64) string {
	cp := append([]int64(nil), ids...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	var b strings.Builder
	for i, id := range cp {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(id, 10))
	}
	return b.String()
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
