package usecase

import (
	"context"

	"arthurflix/internal/domain/entity"
)

// AccessGate decides whether a request may reach gated catalogue pages.
type AccessGate interface {
	// Authorize returns Allow, or RedirectTo the login or activation page. It has no side effects.
	// principal is nil for anonymous requests.
	Authorize(ctx context.Context, principal *entity.Principal, requestedPath string) (entity.AccessDecision, error)
}
