package repository

import (
	"context"

	"arthurflix/internal/domain/entity"
)

// DownloadStatRepository aggregates download counts.
type DownloadStatRepository interface {
	// Increment adds one to the (item, quality, kind) counter, creating it when missing.
	// Returns ErrItemNotFound when the item does not exist.
	Increment(ctx context.Context, stat *entity.DownloadStat) error
}
