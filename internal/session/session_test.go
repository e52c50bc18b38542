package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/rbac-admin/internal/cache"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func TestMemory_PutGetRemove(t *testing.T) {
	ctx := context.Background()
	clk := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := NewMemory(WithClock(clk.Now))

	_, ok, err := m.Get(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Put(ctx, "alice", "T1", clk.Now().Add(5*time.Minute)))
	tok, ok, _ := m.Get(ctx, "alice")
	assert.True(t, ok)
	assert.Equal(t, "T1", tok)

	// overwrite
	require.NoError(t, m.Put(ctx, "alice", "T2", clk.Now().Add(5*time.Minute)))
	tok, _, _ = m.Get(ctx, "alice")
	assert.Equal(t, "T2", tok)

	tok, ok, _ = m.Remove(ctx, "alice")
	assert.True(t, ok)
	assert.Equal(t, "T2", tok)

	_, ok, _ = m.Remove(ctx, "alice")
	assert.False(t, ok)
}

func TestMemory_ExpiredEntryIsAbsent(t *testing.T) {
	ctx := context.Background()
	clk := &clock{t: time.Unix(1_700_000_000, 0)}
	m := NewMemory(WithClock(clk.Now))

	require.NoError(t, m.Put(ctx, "bob", "T", clk.Now().Add(5*time.Minute)))
	clk.Advance(5 * time.Minute)

	_, ok, _ := m.Get(ctx, "bob")
	assert.False(t, ok)
	n, _ := m.Len(ctx)
	assert.Zero(t, n, "expired entry is evicted on read")
}

func TestMemory_Sweep(t *testing.T) {
	ctx := context.Background()
	clk := &clock{t: time.Unix(1_700_000_000, 0)}
	m := NewMemory(WithClock(clk.Now))

	require.NoError(t, m.Put(ctx, "a", "1", clk.Now().Add(time.Minute)))
	require.NoError(t, m.Put(ctx, "b", "2", clk.Now().Add(10*time.Minute)))
	clk.Advance(2 * time.Minute)

	removed, err := m.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	n, _ := m.Len(ctx)
	assert.Equal(t, 1, n)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	exp := time.Now().Add(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("u%d", i%5)
			_ = m.Put(ctx, name, fmt.Sprint(i), exp)
			_, _, _ = m.Get(ctx, name)
			if i%7 == 0 {
				_, _, _ = m.Remove(ctx, name)
			}
		}(i)
	}
	wg.Wait()

	n, _ := m.Len(ctx)
	assert.LessOrEqual(t, n, 5)
}

func TestShared_OverMemoryCache(t *testing.T) {
	ctx := context.Background()
	s := NewShared(cache.NewMemory("rbac", time.Minute))

	require.NoError(t, s.Put(ctx, "alice", "T", time.Now().Add(time.Minute)))
	tok, ok, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "T", tok)

	tok, ok, _ = s.Remove(ctx, "alice")
	assert.True(t, ok)
	assert.Equal(t, "T", tok)

	_, ok, _ = s.Remove(ctx, "alice")
	assert.False(t, ok)

	// an already-expired token is never stored
	require.NoError(t, s.Put(ctx, "bob", "T", time.Now().Add(-time.Second)))
	_, ok, _ = s.Get(ctx, "bob")
	assert.False(t, ok)
}

func TestSweeper_BadSpec(t *testing.T) {
	_, err := NewSweeper(NewMemory(), "not a cron")
	assert.Error(t, err)
}

func TestSweeper_RunReportsLive(t *testing.T) {
	ctx := context.Background()
	clk := &clock{t: time.Unix(1_700_000_000, 0)}
	m := NewMemory(WithClock(clk.Now))
	require.NoError(t, m.Put(ctx, "a", "1", clk.Now().Add(time.Second)))
	require.NoError(t, m.Put(ctx, "b", "2", clk.Now().Add(time.Hour)))
	clk.Advance(time.Minute)

	sw, err := NewSweeper(m, "")
	require.NoError(t, err)
	live := -1
	sw.OnSweep = func(n int) { live = n }
	sw.run()
	assert.Equal(t, 1, live)
}
