package repository

import (
	"context"
	"errors"

	"arthurflix/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrLibraryEntryNotFound is returned when the user has not shelved the item.
	ErrLibraryEntryNotFound = errors.New("library entry not found")

	// ErrAvatarNotFound is returned for unknown avatar ids.
	ErrAvatarNotFound = errors.New("avatar not found")
)

// LibraryRepository persists per-user catalogue state: shelves, visits and profiles.
type LibraryRepository interface {
	FindEntry(ctx context.Context, userID, itemID uuid.UUID) (*entity.LibraryEntry, error)
	SaveEntry(ctx context.Context, entry *entity.LibraryEntry) error
	DeleteEntry(ctx context.Context, userID, itemID uuid.UUID) error

	// ListEntries returns entries with the given status, newest first, with Item loaded.
	ListEntries(ctx context.Context, userID uuid.UUID, status entity.LibraryStatus) ([]*entity.LibraryEntry, error)

	// RecordVisit upserts the visit of (userID, itemID) and keeps only the newest keep visits.
	RecordVisit(ctx context.Context, visit *entity.ItemVisit, keep int) error

	// RecentVisits returns up to limit visits, newest first, with Item loaded.
	RecentVisits(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ItemVisit, error)

	ListAvatars(ctx context.Context) ([]*entity.Avatar, error)
	FindAvatar(ctx context.Context, id int) (*entity.Avatar, error)

	// FindProfile returns nil, nil when the user has no profile.
	FindProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	SaveProfile(ctx context.Context, profile *entity.UserProfile) error
}
