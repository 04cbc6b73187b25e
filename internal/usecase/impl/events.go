package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/domain/entity"
	"arthurflix/internal/domain/service"

	"github.com/google/uuid"
)

// publishDownloadEvent is best effort. A failed publish is logged and never fails the caller.
func publishDownloadEvent(
	ctx context.Context,
	publisher service.EventPublisher,
	logger *slog.Logger,
	itemID uuid.UUID,
	quality entity.Quality,
	kind entity.DownloadKind,
	token string,
) {
	if publisher == nil {
		return
	}

	event := &service.DownloadEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		ItemID:     itemID.String(),
		Quality:    string(quality),
		Kind:       string(kind),
		Token:      token,
		OccurredAt: time.Now().UTC(),
	}

	if err := publisher.PublishDownloadEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish download event",
			slog.String("item_id", event.ItemID),
			slog.String("kind", event.Kind),
			slog.Any("error", err),
		)
	}
}
