package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory implementa Client sobre go-cache (in-process).
type Memory struct {
	prefix string
	c      *gocache.Cache
	takeMu sync.Mutex
	hits   atomic.Int64
	misses atomic.Int64
}

func NewMemory(prefix string, cleanup time.Duration) *Memory {
	if cleanup <= 0 {
		cleanup = time.Minute
	}
	return &Memory{prefix: prefix, c: gocache.New(gocache.NoExpiration, cleanup)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	v, ok := m.c.Get(prefixed(m.prefix, key))
	if !ok {
		m.misses.Add(1)
		return "", ErrNotFound
	}
	m.hits.Add(1)
	s, _ := v.(string)
	return s, nil
}

func (m *Memory) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.c.Set(prefixed(m.prefix, key), value, ttl)
	return nil
}

// Take serializa lectura+borrado; go-cache no tiene GETDEL. Cuenta como
// un hit o un miss, igual que GETDEL en redis.
func (m *Memory) Take(_ context.Context, key string) (string, error) {
	k := prefixed(m.prefix, key)
	m.takeMu.Lock()
	defer m.takeMu.Unlock()
	v, ok := m.c.Get(k)
	if !ok {
		m.misses.Add(1)
		return "", ErrNotFound
	}
	m.hits.Add(1)
	m.c.Delete(k)
	s, _ := v.(string)
	return s, nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.c.Delete(prefixed(m.prefix, key))
	return nil
}

func (m *Memory) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.c.Get(prefixed(m.prefix, key))
	return ok, nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close() error {
	m.c.Flush()
	return nil
}

func (m *Memory) Stats(context.Context) (Stats, error) {
	return Stats{
		Driver: "memory",
		Keys:   int64(m.c.ItemCount()),
		Hits:   m.hits.Load(),
		Misses: m.misses.Load(),
	}, nil
}

// Incr suma delta a un contador, creándolo con ttl si no existe.
// Retorna el valor nuevo y el tiempo que le queda a la key.
func (m *Memory) Incr(key string, delta int64, ttl time.Duration) (int64, time.Duration) {
	k := prefixed(m.prefix, key)
	m.takeMu.Lock()
	defer m.takeMu.Unlock()

	if _, exp, ok := m.c.GetWithExpiration(k); ok {
		n, err := m.c.IncrementInt64(k, delta)
		if err == nil {
			left := ttl
			if !exp.IsZero() {
				left = time.Until(exp)
			}
			return n, left
		}
	}
	m.c.Set(k, delta, ttl)
	return delta, ttl
}
