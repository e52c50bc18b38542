package session

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	token     string
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Memory is a process-local Store. Reads share the lock; writes are exclusive.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

type MemoryOption func(*Memory)

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) { m.now = now }
}

func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{entries: make(map[string]entry), now: time.Now}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *Memory) Put(_ context.Context, userName, token string, expiresAt time.Time) error {
	m.mu.Lock()
	m.entries[userName] = entry{token: token, expiresAt: expiresAt}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Get(_ context.Context, userName string) (string, bool, error) {
	now := m.now()

	m.mu.RLock()
	e, ok := m.entries[userName]
	m.mu.RUnlock()
	if !ok {
		return "", false, nil
	}
	if !e.expired(now) {
		return e.token, true, nil
	}

	// Re-check under the write lock; a concurrent Put may have refreshed it.
	m.mu.Lock()
	if cur, ok := m.entries[userName]; ok && cur.expired(now) {
		delete(m.entries, userName)
	}
	m.mu.Unlock()
	return "", false, nil
}

func (m *Memory) Remove(_ context.Context, userName string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[userName]
	if !ok {
		return "", false, nil
	}
	delete(m.entries, userName)
	if e.expired(m.now()) {
		return "", false, nil
	}
	return e.token, true, nil
}

func (m *Memory) Len(context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries), nil
}

// Sweep drops every expired entry and returns how many were removed.
func (m *Memory) Sweep(context.Context) (int, error) {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for k, e := range m.entries {
		if e.expired(now) {
			delete(m.entries, k)
			n++
		}
	}
	return n, nil
}
