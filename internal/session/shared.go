package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dropDatabas3/rbac-admin/internal/cache"
)

const keyPrefix = "session:"

// Shared stores sessions in a cache.Client so several replicas see the same
// entries. Expiry is delegated to the cache TTL.
type Shared struct {
	c   cache.Client
	now func() time.Time
}

func NewShared(c cache.Client) *Shared {
	return &Shared{c: c, now: time.Now}
}

func (s *Shared) Put(ctx context.Context, userName, token string, expiresAt time.Time) error {
	var ttl time.Duration
	if !expiresAt.IsZero() {
		ttl = expiresAt.Sub(s.now())
		if ttl <= 0 {
			// already expired; make sure no stale entry survives
			return s.c.Delete(ctx, keyPrefix+userName)
		}
	}
	if err := s.c.Set(ctx, keyPrefix+userName, token, ttl); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return nil
}

func (s *Shared) Get(ctx context.Context, userName string) (string, bool, error) {
	tok, err := s.c.Get(ctx, keyPrefix+userName)
	if errors.Is(err, cache.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session get: %w", err)
	}
	return tok, true, nil
}

func (s *Shared) Remove(ctx context.Context, userName string) (string, bool, error) {
	tok, err := s.c.Take(ctx, keyPrefix+userName)
	if errors.Is(err, cache.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session remove: %w", err)
	}
	return tok, true, nil
}

// Len returns the total key count of the backing cache, which may include
// keys that are not sessions.
func (s *Shared) Len(ctx context.Context) (int, error) {
	st, err := s.c.Stats(ctx)
	if err != nil {
		return 0, err
	}
	return int(st.Keys), nil
}
