package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestMemoryLimiter(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter(0, 2)

	assert.True(t, l.Allow(ctx, "1.1.1.1"))
	assert.True(t, l.Allow(ctx, "1.1.1.1"))
	assert.False(t, l.Allow(ctx, "1.1.1.1"))

	// buckets are per key
	assert.True(t, l.Allow(ctx, "2.2.2.2"))
}

func TestRedisLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	l := NewRedisLimiter(client, 3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(ctx, "1.1.1.1"), "request %d", i)
	}
	assert.False(t, l.Allow(ctx, "1.1.1.1"))
	assert.True(t, l.Allow(ctx, "2.2.2.2"))
	assert.True(t, mr.Exists("cf_ratelimit:1.1.1.1"))

	mr.FastForward(time.Minute)
	assert.True(t, l.Allow(ctx, "1.1.1.1"))
}

func TestRedisLimiterFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedisLimiter(client, 1, time.Minute)
	mr.Close()

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(context.Background(), "1.1.1.1"))
	}
}

func TestNoop(t *testing.T) {
	var l Limiter = Noop{}
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow(context.Background(), "x"))
	}
}
