package repository

import "context"

// RBACRepository reads and writes the user→role and role→permission joins.
type RBACRepository interface {
	// UserRoleIDs returns the role ids linked to a user, ascending.
	UserRoleIDs(ctx context.Context, userID int64) ([]int64, error)

	// PermCodesByRoles returns the distinct perm codes of any of the roles.
	PermCodesByRoles(ctx context.Context, roleIDs []int64) ([]string, error)

	// RolePermCodes returns the perm codes of a single role.
	RolePermCodes(ctx context.Context, roleID int64) ([]string, error)

	// ReplaceRolePerms deletes every perm row of the role and inserts one
	// row per code, atomically.
	ReplaceRolePerms(ctx context.Context, roleID int64, codes []string) error
}

type RoleRepository interface {
	Create(ctx context.Context, r *Role) error
	GetByID(ctx context.Context, id int64) (*Role, error)
	List(ctx context.Context, f RoleFilter, p Page) ([]Role, int64, error)
	Update(ctx context.Context, r *Role) error
	// Delete removes the roles together with their perm and user links.
	Delete(ctx context.Context, ids []int64) (int64, error)
}
