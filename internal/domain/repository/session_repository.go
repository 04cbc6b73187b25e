package repository

import (
	"context"
	"errors"

	"arthurflix/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session row does not exist.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists login sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionTrackerRepository stores the one tracked session per user.
type SessionTrackerRepository interface {
	// FindByUserID returns nil, nil when the user has no tracker.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.SessionTracker, error)

	// Upsert creates or overwrites the tracker of tracker.UserID.
	Upsert(ctx context.Context, tracker *entity.SessionTracker) error
}
