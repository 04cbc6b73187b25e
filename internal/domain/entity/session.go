package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a persisted login. A cookie is only honoured while its session row exists and has not expired.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	UserAgent string
	IP        string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session is past its expiry at now.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// SessionTracker records the single session currently allowed for a user.
// A nil SessionID means the user is logged out everywhere.
type SessionTracker struct {
	UserID    uuid.UUID
	SessionID *uuid.UUID
	UpdatedAt time.Time
}

// Holds reports whether sessionID is the tracked session.
func (t *SessionTracker) Holds(sessionID uuid.UUID) bool {
	return t.SessionID != nil && *t.SessionID == sessionID
}

// Displaces reports whether another session has taken sessionID's place.
func (t *SessionTracker) Displaces(sessionID uuid.UUID) bool {
	return t.SessionID != nil && *t.SessionID != sessionID
}
