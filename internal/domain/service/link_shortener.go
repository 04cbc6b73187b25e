package service

import (
	"context"
	"errors"
)

// ErrShortenerUnavailable is wrapped by every LinkShortener failure. Callers fall back to the long URL.
var ErrShortenerUnavailable = errors.New("link shortener unavailable")

// LinkShortener turns a destination into a monetized short link.
type LinkShortener interface {
	// Shorten returns the short URL for destination. alias may be empty.
	Shorten(ctx context.Context, destination, alias string) (string, error)
}
