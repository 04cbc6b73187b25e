package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Quality is a delivery quality label.
type Quality string

const (
	QualitySD Quality = "SD"
	QualityHD Quality = "HD"
)

// ParseQuality normalises a user supplied quality. ok is false for unknown labels.
func ParseQuality(raw string) (q Quality, ok bool) {
	switch Quality(strings.ToUpper(strings.TrimSpace(raw))) {
	case QualitySD:
		return QualitySD, true
	case QualityHD:
		return QualityHD, true
	default:
		return "", false
	}
}

// DownloadToken is a short lived token issued for one download request.
type DownloadToken struct {
	Token     string
	ItemID    uuid.UUID
	Quality   Quality
	FileID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the token is past its expiry at now.
func (t *DownloadToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// DirectDownloadToken redirects straight to a stored URL and counts its uses.
type DirectDownloadToken struct {
	ID             uuid.UUID
	Token          string
	ItemID         uuid.UUID
	Quality        Quality
	DestinationURL string
	CreatedAt      time.Time
	ExpiresAt      time.Time
	AccessCount    int64
}

// IsExpired reports whether the token is past its expiry at now.
func (t *DirectDownloadToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// TokenState is the outcome of looking a token up.
type TokenState int

const (
	TokenNotFound TokenState = iota
	TokenExpired
	TokenValid
)

func (s TokenState) String() string {
	switch s {
	case TokenValid:
		return "valid"
	case TokenExpired:
		return "expired"
	default:
		return "not_found"
	}
}

// TokenValidation is the result of validating a token. Record is only set when State is TokenValid.
type TokenValidation[T any] struct {
	State  TokenState
	Record *T
}

// ValidToken wraps a usable record.
func ValidToken[T any](record *T) TokenValidation[T] {
	return TokenValidation[T]{State: TokenValid, Record: record}
}

// ExpiredToken reports a token that existed but had expired.
func ExpiredToken[T any]() TokenValidation[T] {
	return TokenValidation[T]{State: TokenExpired}
}

// UnknownToken reports a token that does not exist.
func UnknownToken[T any]() TokenValidation[T] {
	return TokenValidation[T]{State: TokenNotFound}
}

// IsValid reports whether the validation carries a usable record.
func (v TokenValidation[T]) IsValid() bool {
	return v.State == TokenValid && v.Record != nil
}
