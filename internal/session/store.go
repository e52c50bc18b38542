// Package session keeps the username -> issued token mapping used by sign-in
// to return an existing token and by sign-out to revoke it.
//
// Entries remember the expiry of their token; an entry whose token has
// expired is treated as absent.
package session

import (
	"context"
	"time"
)

// Store is the session cache contract. Implementations must be safe for
// concurrent use.
type Store interface {
	// Put inserts or overwrites the entry for userName.
	Put(ctx context.Context, userName, token string, expiresAt time.Time) error
	// Get returns the live token for userName, if any.
	Get(ctx context.Context, userName string) (string, bool, error)
	// Remove deletes the entry and returns the token it held.
	Remove(ctx context.Context, userName string) (string, bool, error)
	// Len reports the number of live entries (best effort for shared stores).
	Len(ctx context.Context) (int, error)
}
