package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(254)"`
	FirstName    string    `gorm:"type:varchar(150)"`
	LastName     string    `gorm:"type:varchar(150)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// SessionModel mirrors the 'sessions' table.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserAgent string    `gorm:"type:varchar(512)"`
	IP        string    `gorm:"type:varchar(64)"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

func (SessionModel) TableName() string {
	return "sessions"
}

// SessionTrackerModel mirrors the 'session_trackers' table, one row per user.
type SessionTrackerModel struct {
	UserID    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SessionID *uuid.UUID `gorm:"type:uuid"`
	UpdatedAt time.Time
}

func (SessionTrackerModel) TableName() string {
	return "session_trackers"
}

// MembershipKeyModel mirrors the 'membership_keys' table.
type MembershipKeyModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Key       string     `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID    *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	IsActive  bool       `gorm:"not null;default:true"`
	ExpiresAt *time.Time
	Notes     string `gorm:"type:text"`
	CreatedAt time.Time
}

func (MembershipKeyModel) TableName() string {
	return "membership_keys"
}
