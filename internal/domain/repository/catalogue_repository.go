package repository

import (
	"context"
	"errors"

	"arthurflix/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrItemNotFound is returned when a catalogue item does not exist.
var ErrItemNotFound = errors.New("catalogue item not found")

// CatalogueRepository reads catalogue items and episodes.
type CatalogueRepository interface {
	FindBySlug(ctx context.Context, slug string) (*entity.CatalogueItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CatalogueItem, error)

	// Count returns how many items match filter.
	Count(ctx context.Context, filter entity.CatalogueFilter) (int64, error)

	// List returns matching items, newest upload first.
	List(ctx context.Context, filter entity.CatalogueFilter, offset, limit int) ([]*entity.CatalogueItem, error)

	// Episodes returns the episodes of an item ordered by number.
	Episodes(ctx context.Context, itemID uuid.UUID) ([]*entity.Episode, error)
	// WithFileIDs returns every item and episode that stores at least one Telegram file id.
	WithFileIDs(ctx context.Context) ([]*entity.CatalogueItem, []*entity.Episode, error)
}
