package repository

import (
	"context"
	"time"
)

type UserRepository interface {
	// GetCredential looks a user up by exact user_name.
	GetCredential(ctx context.Context, userName string) (*Credential, error)

	GetByID(ctx context.Context, id int64) (*User, error)

	List(ctx context.Context, f UserFilter, p Page) ([]User, int64, error)

	// Create inserts the user and its role links in one transaction.
	// u.ID is filled on success.
	Create(ctx context.Context, u *User, roleIDs []int64) error

	// Update rewrites the profile fields (never the password) and replaces
	// the user's role links, in one transaction.
	Update(ctx context.Context, u *User, roleIDs []int64) error

	UpdatePassword(ctx context.Context, id int64, hash string) error

	TouchLastLogin(ctx context.Context, id int64, at time.Time) error

	// Delete removes the users and their role links; returns rows removed.
	Delete(ctx context.Context, ids []int64) (int64, error)
}
