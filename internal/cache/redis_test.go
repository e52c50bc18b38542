package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_PrefixAndTake(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	c, err := NewRedis(ctx, Config{Driver: "redis", Addr: srv.Addr(), Prefix: "rbac"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Set(ctx, "session:alice", "tok", time.Minute))
	assert.True(t, srv.Exists("rbac:session:alice"))
	assert.Positive(t, srv.TTL("rbac:session:alice"))

	v, err := c.Get(ctx, "session:alice")
	require.NoError(t, err)
	assert.Equal(t, "tok", v)

	v, err = c.Take(ctx, "session:alice")
	require.NoError(t, err)
	assert.Equal(t, "tok", v)

	ok, err := c.Exists(ctx, "session:alice")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.Take(ctx, "session:alice")
	assert.True(t, IsNotFound(err))
}

func TestNewRedis_PingFailure(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	_, err := NewRedis(context.Background(), Config{Driver: "redis", Addr: addr})
	assert.ErrorContains(t, err, "ping")
}
