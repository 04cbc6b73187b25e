package repository

import (
	"context"
	"errors"
	"time"

	"arthurflix/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTokenNotFound is returned when a token string is unknown.
var ErrTokenNotFound = errors.New("token not found")

// TokenRepository persists download and direct download tokens.
type TokenRepository interface {
	CreateDownload(ctx context.Context, token *entity.DownloadToken) error
	FindDownload(ctx context.Context, token string) (*entity.DownloadToken, error)
	DeleteDownload(ctx context.Context, token string) error

	CreateDirect(ctx context.Context, token *entity.DirectDownloadToken) error
	FindDirect(ctx context.Context, token string) (*entity.DirectDownloadToken, error)
	DeleteDirect(ctx context.Context, token string) error

	// FindActiveDirect returns the newest direct token for (itemID, quality) that has not expired at now,
	// or ErrTokenNotFound.
	FindActiveDirect(ctx context.Context, itemID uuid.UUID, quality entity.Quality, now time.Time) (*entity.DirectDownloadToken, error)

	// IncrementDirectAccess adds one to the access counter and returns the new value.
	IncrementDirectAccess(ctx context.Context, token string) (int64, error)

	// CountExpired and DeleteExpired operate on rows whose expiry is before now.
	CountExpired(ctx context.Context, now time.Time) (direct, download int64, err error)
	DeleteExpired(ctx context.Context, now time.Time) (direct, download int64, err error)
	CountActive(ctx context.Context, now time.Time) (direct, download int64, err error)
}
