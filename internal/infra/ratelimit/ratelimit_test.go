package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type failingStore struct{}

func (failingStore) Incr(context.Context, string) (int64, error) {
	return 0, errors.New("connection refused")
}
func (failingStore) Expire(context.Context, string, time.Duration) error { return nil }
func (failingStore) TTL(context.Context, string) (time.Duration, error) { return 0, nil }
func (failingStore) Del(context.Context, ...string) error               { return nil }

func TestLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	limiter := New(NewMemoryStore(), nil)

	for i := 0; i < 3; i++ {
		allowed, retry := limiter.Allow(ctx, "login:10.0.0.1", 3, time.Minute)
		assert.True(t, allowed, "attempt %d", i+1)
		assert.Zero(t, retry)
	}

	allowed, retry := limiter.Allow(ctx, "login:10.0.0.1", 3, time.Minute)
	assert.False(t, allowed)
	assert.Greater(t, retry, time.Duration(0))
	assert.LessOrEqual(t, retry, time.Minute)

	allowed, _ = limiter.Allow(ctx, "login:10.0.0.2", 3, time.Minute)
	assert.True(t, allowed, "other keys are counted separately")
}

func TestLimiter_Reset(t *testing.T) {
	ctx := context.Background()
	limiter := New(NewMemoryStore(), nil)

	limiter.Allow(ctx, "k", 1, time.Minute)
	allowed, _ := limiter.Allow(ctx, "k", 1, time.Minute)
	assert.False(t, allowed)

	limiter.Reset(ctx, "k")

	allowed, _ = limiter.Allow(ctx, "k", 1, time.Minute)
	assert.True(t, allowed)
}

func TestLimiter_WindowExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }
	limiter := New(store, nil)

	limiter.Allow(ctx, "k", 1, time.Minute)
	allowed, retry := limiter.Allow(ctx, "k", 1, time.Minute)
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, retry)

	now = now.Add(time.Minute)

	allowed, _ = limiter.Allow(ctx, "k", 1, time.Minute)
	assert.True(t, allowed)
}

func TestLimiter_FailsOpen(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		limiter *Limiter
		limit   int
	}{
		{name: "nil store", limiter: New(nil, nil), limit: 1},
		{name: "store error", limiter: New(failingStore{}, nil), limit: 1},
		{name: "non-positive limit", limiter: New(NewMemoryStore(), nil), limit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 5; i++ {
				allowed, retry := tt.limiter.Allow(ctx, "k", tt.limit, time.Minute)
				assert.True(t, allowed)
				assert.Zero(t, retry)
			}
			tt.limiter.Reset(ctx, "k")
		})
	}
}
