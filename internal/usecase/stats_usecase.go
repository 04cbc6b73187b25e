package usecase

import (
	"context"

	"arthurflix/internal/domain/service"
)

// StatsUsecase aggregates download events.
type StatsUsecase interface {
	// RecordDownload counts one event. Events for unknown items are dropped without error.
	RecordDownload(ctx context.Context, event *service.DownloadEvent) error
}
