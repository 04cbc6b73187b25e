package service

import (
	"context"
	"time"
)

// RateLimiter counts attempts per key inside a window.
type RateLimiter interface {
	// Allow records one attempt. It returns false with the remaining wait when the limit is exceeded.
	// Store failures allow the attempt.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, retryAfter time.Duration)

	// Reset forgets the attempts recorded for key.
	Reset(ctx context.Context, key string)
}
