package middleware

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryCounter struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func (m *memoryCounter) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts == nil {
		m.counts = map[string]int64{}
	}
	m.counts[key]++
	return m.counts[key], nil
}

func newLimitedApp(counter Counter, limit int) *fiber.App {
	app := fiber.New()
	app.Use(RequestIDMiddleware())
	app.Post("/generate", RateLimitMiddleware(counter, "generate", limit, time.Minute, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	app := newLimitedApp(&memoryCounter{}, 2)

	for i, want := range []int{200, 200, 429, 429} {
		resp, err := app.Test(httptest.NewRequest("POST", "/generate", nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, "request %d", i+1)
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	app := newLimitedApp(&memoryCounter{err: errors.New("redis down")}, 1)

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/generate", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	counter := &memoryCounter{}
	app := newLimitedApp(counter, 0)

	resp, err := app.Test(httptest.NewRequest("POST", "/generate", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, counter.counts)
}

type fakeRedis struct {
	count     int64
	expireErr error
	expired   []string
	deleted   []string
}

func (f *fakeRedis) Incr(_ context.Context, _ string) *redis.IntCmd {
	f.count++
	return redis.NewIntResult(f.count, nil)
}

func (f *fakeRedis) Expire(_ context.Context, key string, _ time.Duration) *redis.BoolCmd {
	if f.expireErr != nil {
		return redis.NewBoolResult(false, f.expireErr)
	}
	f.expired = append(f.expired, key)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.deleted = append(f.deleted, keys...)
	f.count = 0
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestRedisCounter_SetsExpiryOnFirstHit(t *testing.T) {
	fake := &fakeRedis{}
	counter := &RedisCounter{client: fake}

	for i := 1; i <= 3; i++ {
		n, err := counter.Incr(context.Background(), "rl:generate:1.2.3.4", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(i), n)
	}
	assert.Equal(t, []string{"rl:generate:1.2.3.4"}, fake.expired)
	assert.Empty(t, fake.deleted)
}

func TestRedisCounter_ExpiryFailureDropsKey(t *testing.T) {
	fake := &fakeRedis{expireErr: errors.New("connection reset")}
	counter := &RedisCounter{client: fake}

	_, err := counter.Incr(context.Background(), "rl:generate:1.2.3.4", time.Minute)
	require.Error(t, err)
	assert.Equal(t, []string{"rl:generate:1.2.3.4"}, fake.deleted)

	// The next request starts a fresh window instead of counting on a key with no TTL.
	fake.expireErr = nil
	n, err := counter.Incr(context.Background(), "rl:generate:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, []string{"rl:generate:1.2.3.4"}, fake.expired)
}
