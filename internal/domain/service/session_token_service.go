package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionClaims is what a signed session cookie carries.
type SessionClaims struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
	ExpiresAt time.Time
}

// SessionTokenService signs and verifies the session cookie value.
// A valid signature only proves the cookie was issued by us; the session row decides whether it is still live.
type SessionTokenService interface {
	Sign(userID, sessionID uuid.UUID, expiresAt time.Time) (string, error)
	Parse(token string) (*SessionClaims, error)
}
