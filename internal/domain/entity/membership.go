package entity

import (
	"time"

	"github.com/google/uuid"
)

// MembershipKey gates access to the catalogue.
//
// A key is usable when it is active, linked to a user, has an expiry set and now is not past
// that expiry. Activation always sets ExpiresAt, so an unset expiry only exists on keys that
// were provisioned but never activated.
type MembershipKey struct {
	ID        uuid.UUID
	Key       string
	UserID    *uuid.UUID
	IsActive  bool
	ExpiresAt *time.Time
	Notes     string
	CreatedAt time.Time
}

// IsValid applies the membership validity rule at now.
func (k *MembershipKey) IsValid(now time.Time) bool {
	if k == nil || !k.IsActive || k.UserID == nil || k.ExpiresAt == nil {
		return false
	}

	return !now.After(*k.ExpiresAt)
}

// IsAssigned reports whether the key is linked to any user.
func (k *MembershipKey) IsAssigned() bool {
	return k.UserID != nil
}

// MembershipState summarises a user's membership for display.
type MembershipState string

const (
	MembershipNone    MembershipState = "none"
	MembershipActive  MembershipState = "active"
	MembershipExpired MembershipState = "expired"
	MembershipRevoked MembershipState = "revoked"
)

// MembershipStatus is the membership of one user at a point in time.
type MembershipStatus struct {
	State     MembershipState
	Key       string
	ExpiresAt *time.Time
}

// DaysLeft returns the whole days until expiry, or zero when not active.
func (s MembershipStatus) DaysLeft(now time.Time) int {
	if s.State != MembershipActive || s.ExpiresAt == nil {
		return 0
	}

	return int(s.ExpiresAt.Sub(now).Hours() / 24)
}
