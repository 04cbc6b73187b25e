package usecase

import (
	"context"

	"arthurflix/internal/domain/entity"

	"github.com/google/uuid"
)

// ItemDetail is everything the detail page shows about an item.
type ItemDetail struct {
	Item        *entity.CatalogueItem
	Episodes    []*entity.Episode
	SDAvailable bool
	HDAvailable bool
}

// CatalogueUsecase browses the catalogue.
type CatalogueUsecase interface {
	// List pages through items, newest upload first. Out of range pages clamp to the nearest valid page.
	List(ctx context.Context, query string, page int) (*entity.Page[*entity.CatalogueItem], error)

	ListByCategory(ctx context.Context, category entity.ItemType, query string, page int) (*entity.Page[*entity.CatalogueItem], error)

	// Detail loads an item and records the visit of viewer when viewer is not nil.
	Detail(ctx context.Context, slug string, viewer *uuid.UUID) (*ItemDetail, error)

	Episodes(ctx context.Context, slug string) (*ItemDetail, error)

	// StreamURL resolves the streaming URL of an item, or of one of its episodes when episode > 0.
	StreamURL(ctx context.Context, slug, quality string, episode int) (string, error)
}
