package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:"

// RedisFixedWindowLimiter shares one fixed window per key across instances.
type RedisFixedWindowLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisFixedWindowLimiter(client *redis.Client, limit int, window time.Duration) *RedisFixedWindowLimiter {
	return &RedisFixedWindowLimiter{client: client, limit: limit, window: window}
}

// Allow increments the key's counter and starts the window on its first
// hit. The key's TTL is the time left until the window resets.
func (rl *RedisFixedWindowLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	k := redisKeyPrefix + key

	count, err := rl.client.Incr(ctx, k).Result()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit incr %s: %w", key, err)
	}

	ttl, err := rl.client.PTTL(ctx, k).Result()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit ttl %s: %w", key, err)
	}
	// -1: the key exists without an expiry (first hit, or a lost EXPIRE).
	if count == 1 || ttl < 0 {
		if err := rl.client.PExpire(ctx, k, rl.window).Err(); err != nil {
			return false, 0, fmt.Errorf("rate limit expire %s: %w", key, err)
		}
		ttl = rl.window
	}

	if count <= int64(rl.limit) {
		return true, 0, nil
	}
	return false, ttl, nil
}
