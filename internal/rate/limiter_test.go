package rate

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	rdb "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_FixedWindow(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter(2, time.Hour)

	r1, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, r1.Allowed)
	assert.EqualValues(t, 1, r1.Remaining)

	r2, _ := l.Allow(ctx, "1.2.3.4")
	assert.True(t, r2.Allowed)
	assert.Zero(t, r2.Remaining)

	r3, _ := l.Allow(ctx, "1.2.3.4")
	assert.False(t, r3.Allowed)
	assert.Positive(t, r3.RetryAfter)

	other, _ := l.Allow(ctx, "5.6.7.8")
	assert.True(t, other.Allowed, "keys are counted independently")
}

func newRedisLimiter(t *testing.T, max int, window time.Duration) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := rdb.NewClient(&rdb.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLimiter(client, "rbac:rate:", max, window), srv
}

func TestRedisLimiter_FixedWindow(t *testing.T) {
	ctx := context.Background()
	l, srv := newRedisLimiter(t, 2, time.Hour)

	r1, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, r1.Allowed)
	assert.EqualValues(t, 1, r1.Remaining)

	keys := srv.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "rbac:rate:1.2.3.4:"))
	assert.Positive(t, srv.TTL(keys[0]), "window key gets a ttl on the first hit")

	_, _ = l.Allow(ctx, "1.2.3.4")
	r3, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, r3.Allowed)
	assert.Positive(t, r3.RetryAfter)
}

func TestRedisLimiter_HealsKeyWithoutTTL(t *testing.T) {
	ctx := context.Background()
	l, srv := newRedisLimiter(t, 5, time.Hour)

	_, err := l.Allow(ctx, "ip")
	require.NoError(t, err)
	key := srv.Keys()[0]

	// una key que quedó sin expiración vuelve a tener TTL en el próximo hit
	require.NoError(t, l.Client.Persist(ctx, key).Err())
	require.Zero(t, srv.TTL(key))

	res, err := l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.CurrentHits)
	assert.Positive(t, srv.TTL(key))
}

func TestRedisLimiter_ReportsRedisErrors(t *testing.T) {
	l, srv := newRedisLimiter(t, 5, time.Hour)
	srv.Close()

	_, err := l.Allow(context.Background(), "ip")
	assert.Error(t, err)
}
