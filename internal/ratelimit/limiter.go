package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/seniorconnect-sg/community-api/internal/clock"
)

// Limiter is the injected check-and-record service route handlers consult
// before doing work. Keys are caller-scoped (user id or client IP plus a
// route name); limit/window come from the route registration.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// New returns a redis-backed fixed-window limiter, falling back to an
// in-process one when redis is unreachable: shared counters when redis
// is there, best-effort local counters when it is not.
func New(redisURL string, clk clock.Clock, logger *zap.Logger) Limiter {
	client := redis.NewClient(&redis.Options{Addr: redisURL})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, rate limiter using memory storage",
			zap.String("addr", redisURL),
			zap.Error(err),
		)
		_ = client.Close()
		return NewMemory(clk)
	}

	logger.Info("rate limiter using redis storage", zap.String("addr", redisURL))
	return &RedisLimiter{client: client, clock: clk}
}

// ======================================================
// Redis fixed window
// ======================================================

type RedisLimiter struct {
	client *redis.Client
	clock  clock.Clock
}

func (l *RedisLimiter) Allow(
	ctx context.Context,
	key string,
	limit int,
	window time.Duration,
) (bool, error) {

	bucket := l.clock.Now().Unix() / int64(window.Seconds())
	windowKey := fmt.Sprintf("ratelimit:%s:%d", key, bucket)

	count, err := l.client.Incr(ctx, windowKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// First hit in this window owns the expiry.
		if err := l.client.Expire(ctx, windowKey, window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(limit), nil
}
