package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/adcraft/backend/internal/http/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Counter is the fixed-window store behind the rate limiter.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// redisCounterClient is the part of *redis.Client the counter uses.
type redisCounterClient interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type RedisCounter struct {
	client redisCounterClient
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		// A window key without a TTL would never reset, so drop it if the expiry fails.
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			r.client.Del(ctx, key)
			return 0, fmt.Errorf("set window expiry: %w", err)
		}
	}
	return count, nil
}

// RateLimitMiddleware allows limit requests per window per route and IP. A limit <= 0
// disables it; counter errors fail open.
func RateLimitMiddleware(counter Counter, name string, limit int, window time.Duration, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limit <= 0 {
			return c.Next()
		}

		key := fmt.Sprintf("rl:%s:%s", name, c.IP())

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()
		count, err := counter.Incr(ctx, key, window)
		if err != nil {
			log.Warn("rate limit counter unavailable", zap.Error(err))
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(limit))
		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(limit) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error:     "rate limit exceeded",
				RequestID: GetRequestID(c),
			})
		}

		return c.Next()
	}
}
