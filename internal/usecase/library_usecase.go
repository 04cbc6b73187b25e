package usecase

import (
	"context"

	"arthurflix/internal/domain/entity"

	"github.com/google/uuid"
)

// ToggleAction is what a library toggle did.
type ToggleAction string

const (
	ToggleAdded   ToggleAction = "added"
	ToggleRemoved ToggleAction = "removed"
)

// ProfilePage is the data behind the profile page.
type ProfilePage struct {
	User       *entity.User
	Profile    *entity.UserProfile
	Watchlist  []*entity.LibraryEntry
	Finished   []*entity.LibraryEntry
	Recent     []*entity.ItemVisit
	Avatars    []*entity.Avatar
	Membership *entity.MembershipStatus
}

// LibraryUsecase manages a user's shelves and profile.
type LibraryUsecase interface {
	// Toggle puts the item on the status shelf, or removes it when it is already there.
	Toggle(ctx context.Context, userID, itemID uuid.UUID, status entity.LibraryStatus) (ToggleAction, error)

	// Status returns the shelf of the item, or empty when it is not shelved.
	Status(ctx context.Context, userID, itemID uuid.UUID) (entity.LibraryStatus, error)

	Profile(ctx context.Context, userID uuid.UUID) (*ProfilePage, error)

	ChangeAvatar(ctx context.Context, userID uuid.UUID, avatarID int) (*entity.Avatar, error)

	// Avatars lists the predefined avatars offered at sign-up.
	Avatars(ctx context.Context) ([]*entity.Avatar, error)
}
