package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/domain/repository"
	"arthurflix/internal/domain/service"
	"arthurflix/internal/infra/metrics"
	"arthurflix/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	statsRepo repository.DownloadStatRepository
	logger    *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	StatsRepo repository.DownloadStatRepository
	Logger    *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		statsRepo: params.StatsRepo,
		logger:    params.Logger,
	}
}

// RecordDownload adds one to the counter of the event's (item, quality, kind).
func (srv *statsService) RecordDownload(ctx context.Context, event *service.DownloadEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	stat, err := toDownloadStat(event)
	if err != nil {
		metrics.DownloadEventsProcessed.WithLabelValues("invalid").Inc()

		return err
	}

	if err := srv.statsRepo.Increment(ctx, stat); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			metrics.DownloadEventsProcessed.WithLabelValues("dropped").Inc()
			logger.Warn("Dropping download event for unknown item", slog.String("item_id", event.ItemID))

			return nil
		}
		metrics.DownloadEventsProcessed.WithLabelValues("failed").Inc()

		return errors.Wrap(err, "failed to increment download stat")
	}

	metrics.DownloadEventsProcessed.WithLabelValues("stored").Inc()
	logger.Debug("Download event recorded",
		slog.String("item_id", event.ItemID),
		slog.String("quality", event.Quality),
		slog.String("kind", event.Kind),
	)

	return nil
}

func toDownloadStat(event *service.DownloadEvent) (*entity.DownloadStat, error) {
	if event == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("empty event")
	}

	itemID, err := uuid.Parse(event.ItemID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid item_id")
	}

	quality, ok := entity.ParseQuality(event.Quality)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid quality")
	}

	kind := entity.DownloadKind(event.Kind)
	switch kind {
	case entity.DownloadKindToken, entity.DownloadKindDirect, entity.DownloadKindTelegram:
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid kind")
	}

	return &entity.DownloadStat{
		ItemID:    itemID,
		Quality:   quality,
		Kind:      kind,
		Count:     1,
		UpdatedAt: time.Now(),
	}, nil
}
