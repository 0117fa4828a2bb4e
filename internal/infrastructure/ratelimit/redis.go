// Package ratelimit - счетчик попыток с фиксированным окном в Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const KeyPrefix = "ratelimit:login:"

// Counter - подмножество команд redis.Cmdable, которое нужно лимитеру.
type Counter interface {
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type Limiter struct {
	rdb    Counter
	limit  int
	window time.Duration
}

func New(rdb Counter, limit int, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, limit: limit, window: window}
}

// Connect разбирает REDIS_URL и проверяет соединение.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Allow учитывает попытку для key. Окно начинается с первой попытки.
func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	k := KeyPrefix + key

	// SET NX EX и INCR в одном MULTI: ключ без срока жизни не появляется
	var incr *redis.IntCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, k, 0, l.window)
		incr = pipe.Incr(ctx, k)
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("incr %s: %w", k, err)
	}
	n := incr.Val()

	if int(n) <= l.limit {
		return Result{Allowed: true, Remaining: l.limit - int(n)}, nil
	}

	ttl, err := l.rdb.TTL(ctx, k).Result()
	if err != nil || ttl <= 0 {
		ttl = l.window
	}
	return Result{Allowed: false, RetryAfter: ttl}, nil
}

func (l *Limiter) Limit() int {
	return l.limit
}
