// Package rate implementa rate limiting de ventana fija, en memoria o Redis.
package rate

import (
	"context"
	"fmt"
	"strings"
	"time"

	rdb "github.com/redis/go-redis/v9"

	"github.com/dropDatabas3/rbac-admin/internal/cache"
)

type Result struct {
	Allowed     bool
	Remaining   int64
	RetryAfter  time.Duration
	WindowTTL   time.Duration
	CurrentHits int64
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

func result(hits, max int64, ttl time.Duration) Result {
	remaining := max - hits
	if remaining < 0 {
		remaining = 0
	}
	res := Result{
		Allowed:     hits <= max,
		Remaining:   remaining,
		CurrentHits: hits,
		WindowTTL:   ttl,
	}
	if !res.Allowed {
		res.RetryAfter = ttl
	}
	return res
}

// RedisLimiter: fixed window sencillo (INCR + EXPIRE NX, Redis >= 7)
type RedisLimiter struct {
	Client *rdb.Client
	Prefix string
	Max    int64
	Window time.Duration
}

func NewRedisLimiter(client *rdb.Client, prefix string, max int, window time.Duration) *RedisLimiter {
	if prefix == "" {
		prefix = "rl:"
	}
	return &RedisLimiter{Client: client, Prefix: prefix, Max: int64(max), Window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	winStart := time.Now().UTC().Truncate(l.Window)
	redisKey := fmt.Sprintf("%s%s:%d", l.Prefix, strings.ReplaceAll(key, " ", "_"), winStart.Unix())

	// EXPIRE NX en la misma transacción: la key nunca queda sin TTL, aunque
	// un intento anterior haya fallado entre INCR y EXPIRE.
	pipe := l.Client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	expire := pipe.ExpireNX(ctx, redisKey, l.Window)
	ttl := pipe.TTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("rate: %w", err)
	}
	if err := expire.Err(); err != nil {
		return Result{}, fmt.Errorf("rate: expire: %w", err)
	}

	left := ttl.Val()
	if left <= 0 {
		left = l.Window
	}
	return result(incr.Val(), l.Max, left), nil
}

// MemoryLimiter cuenta hits en un cache.Memory (go-cache). Sirve para una
// sola instancia; con varias réplicas usar RedisLimiter.
type MemoryLimiter struct {
	store  *cache.Memory
	Max    int64
	Window time.Duration
}

func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		store:  cache.NewMemory("rl", window),
		Max:    int64(max),
		Window: window,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	winStart := time.Now().UTC().Truncate(l.Window)
	hits, left := l.store.Incr(fmt.Sprintf("%s:%d", key, winStart.Unix()), 1, l.Window)
	return result(hits, l.Max, left), nil
}
