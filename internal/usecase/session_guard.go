package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SessionGuard keeps at most one live session per user. The newest login wins.
type SessionGuard interface {
	// OnLogin makes sessionID the tracked session, deleting the previously tracked one.
	OnLogin(ctx context.Context, userID, sessionID uuid.UUID) error

	// OnLogout clears the tracked session. A user without a tracker is a no-op.
	OnLogout(ctx context.Context, userID uuid.UUID) error

	// Check reports whether sessionID is the tracked session. Users without a tracker pass.
	Check(ctx context.Context, userID, sessionID uuid.UUID) (bool, error)

	// Displaced reports whether a newer login replaced sessionID. A logged-out user is not displaced.
	Displaced(ctx context.Context, userID, sessionID uuid.UUID) (bool, error)
}
