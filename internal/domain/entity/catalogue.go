package entity

import (
	"time"

	"github.com/google/uuid"
)

// ItemType classifies catalogue items. Categories in URLs use these values.
type ItemType string

const (
	ItemTypeMovie ItemType = "movie"
	ItemTypeTV    ItemType = "tv"
	ItemTypeAnime ItemType = "anime"
)

// Delivery holds the ways one quality of an item or episode can be delivered.
type Delivery struct {
	FileID    string // Telegram file id of the uploaded file
	URL       string // direct download URL
	StreamURL string
}

// Available reports whether the quality can be downloaded at all.
func (d Delivery) Available() bool {
	return d.FileID != "" || d.URL != ""
}

// CatalogueItem is a movie or series.
type CatalogueItem struct {
	ID          uuid.UUID
	Slug        string
	Title       string
	Description string
	Type        ItemType
	PosterURL   string
	UploadDate  time.Time
	SD          Delivery
	HD          Delivery
}

// DeliveryFor returns the delivery fields of quality q.
func (c *CatalogueItem) DeliveryFor(q Quality) Delivery {
	if q == QualityHD {
		return c.HD
	}

	return c.SD
}

// IsSeries reports whether the item is expected to carry episodes.
func (c *CatalogueItem) IsSeries() bool {
	return c.Type == ItemTypeTV || c.Type == ItemTypeAnime
}

// Episode belongs to exactly one catalogue item, ordered by Number.
type Episode struct {
	ID     uuid.UUID
	ItemID uuid.UUID
	Number int
	Title  string
	SD     Delivery
	HD     Delivery
}

// DeliveryFor returns the delivery fields of quality q.
func (e *Episode) DeliveryFor(q Quality) Delivery {
	if q == QualityHD {
		return e.HD
	}

	return e.SD
}

// CatalogueFilter narrows a listing.
type CatalogueFilter struct {
	Type  ItemType
	Query string
}

// Page is one page of a listing. Number is 1-based.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int64
}

// TotalPages returns the page count, never less than one.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 || p.TotalItems == 0 {
		return 1
	}

	return int((p.TotalItems + int64(p.Size) - 1) / int64(p.Size))
}

func (p Page[T]) HasPrevious() bool { return p.Number > 1 }

func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages() }

func (p Page[T]) Previous() int { return p.Number - 1 }

func (p Page[T]) Next() int { return p.Number + 1 }
