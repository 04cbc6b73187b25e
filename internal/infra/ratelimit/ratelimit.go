// Package ratelimit counts attempts per key in a fixed window.
// Without a store every attempt is allowed.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"arthurflix/internal/domain/service"
)

// Store is the minimal counter surface the limiter needs.
type Store interface {
	// Incr atomically increments a counter key and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)
	// Expire sets the TTL on a key.
	Expire(ctx context.Context, key string, ttl time.Duration) error
	// TTL returns the remaining time-to-live on a key. Zero or negative when expired or missing.
	TTL(ctx context.Context, key string) (time.Duration, error)
	// Del removes one or more keys.
	Del(ctx context.Context, keys ...string) error
}

const keyPrefix = "arthurflix:rl:"

// Limiter performs rate limit checks against a Store.
type Limiter struct {
	store  Store
	logger *slog.Logger
}

var _ service.RateLimiter = (*Limiter)(nil)

// New creates a Limiter backed by store. A nil store disables limiting.
func New(store Store, logger *slog.Logger) *Limiter {
	if logger == nil {
		logger = slog.Default()
	}

	return &Limiter{store: store, logger: logger}
}

// Allow records one attempt against key.
func (l *Limiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration) {
	if l.store == nil || limit <= 0 {
		return true, 0
	}

	k := keyPrefix + key
	count, err := l.store.Incr(ctx, k)
	if err != nil {
		l.logger.WarnContext(ctx, "Rate limit store unavailable, allowing attempt", slog.String("key", key), slog.Any("error", err))

		return true, 0
	}

	if count == 1 {
		if err := l.store.Expire(ctx, k, window); err != nil {
			l.logger.WarnContext(ctx, "Failed to set rate limit window", slog.String("key", key), slog.Any("error", err))
		}
	}

	if count <= int64(limit) {
		return true, 0
	}

	retry, err := l.store.TTL(ctx, k)
	if err != nil || retry <= 0 {
		retry = window
	}

	return false, retry
}

// Reset forgets the attempts recorded for key.
func (l *Limiter) Reset(ctx context.Context, key string) {
	if l.store == nil {
		return
	}

	if err := l.store.Del(ctx, keyPrefix+key); err != nil {
		l.logger.WarnContext(ctx, "Failed to reset rate limit", slog.String("key", key), slog.Any("error", err))
	}
}
