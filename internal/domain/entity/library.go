package entity

import (
	"time"

	"github.com/google/uuid"
)

// LibraryStatus is the shelf an item sits on in a user's library.
type LibraryStatus string

const (
	LibraryWatchlist LibraryStatus = "watchlist"
	LibraryFinished  LibraryStatus = "finished"
)

// Valid reports whether s is a known status.
func (s LibraryStatus) Valid() bool {
	return s == LibraryWatchlist || s == LibraryFinished
}

// LibraryEntry links a user to an item with a status. (UserID, ItemID) is unique.
type LibraryEntry struct {
	UserID  uuid.UUID
	ItemID  uuid.UUID
	Status  LibraryStatus
	AddedAt time.Time
	Item    *CatalogueItem
}

// ItemVisit is the last time a user opened an item's detail page.
type ItemVisit struct {
	UserID    uuid.UUID
	ItemID    uuid.UUID
	VisitedAt time.Time
	Item      *CatalogueItem
}

// Avatar is one of the predefined profile pictures.
type Avatar struct {
	ID       int
	Name     string
	ImageURL string
}

// UserProfile links a user to their avatar.
type UserProfile struct {
	UserID    uuid.UUID
	AvatarID  *int
	Avatar    *Avatar
	UpdatedAt time.Time
}
