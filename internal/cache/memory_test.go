package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetTake(t *testing.T) {
	ctx := context.Background()
	c := NewMemory("t", time.Minute)

	_, err := c.Get(ctx, "a")
	assert.True(t, IsNotFound(err))

	require.NoError(t, c.Set(ctx, "a", "1", 0))
	v, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	v, err = c.Take(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	_, err = c.Take(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)

	st, _ := c.Stats(ctx)
	assert.Equal(t, "memory", st.Driver)
	// Get + Take exitosos; Get + Take sobre key ausente
	assert.EqualValues(t, 2, st.Hits)
	assert.EqualValues(t, 2, st.Misses)
	assert.EqualValues(t, 0, st.Keys)
}

func TestMemory_TTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemory("", time.Minute)
	require.NoError(t, c.Set(ctx, "k", "v", 20*time.Millisecond))

	ok, _ := c.Exists(ctx, "k")
	assert.True(t, ok)

	time.Sleep(40 * time.Millisecond)
	ok, _ = c.Exists(ctx, "k")
	assert.False(t, ok)
}

func TestMemory_Incr(t *testing.T) {
	c := NewMemory("rl", time.Minute)
	n, _ := c.Incr("ip", 1, time.Minute)
	assert.EqualValues(t, 1, n)
	n, left := c.Incr("ip", 1, time.Minute)
	assert.EqualValues(t, 2, n)
	assert.LessOrEqual(t, left, time.Minute)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), Config{Driver: "etcd"})
	assert.Error(t, err)

	c, err := New(context.Background(), Config{})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, c)
}
