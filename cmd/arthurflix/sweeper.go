package main

import (
	"context"
	"log/slog"
	"time"

	"arthurflix/config"
	"arthurflix/internal/usecase"

	"go.uber.org/fx"
)

type sweeperParams struct {
	fx.In

	Lc          fx.Lifecycle
	Config      *config.Config
	Maintenance usecase.MaintenanceUsecase
	Logger      *slog.Logger
}

// startSweeper periodically deletes expired tokens when enabled. Validation deletes
// expired rows on its own, so the sweep only keeps the tables small.
func startSweeper(params sweeperParams) {
	cfg := params.Config.Sweeper
	if cfg == nil || !cfg.Enabled {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				sweepLoop(ctx, params.Maintenance, params.Logger, cfg.Interval)
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}

			return nil
		},
	})
}

func sweepLoop(ctx context.Context, maintenance usecase.MaintenanceUsecase, logger *slog.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report, err := maintenance.SweepExpiredTokens(ctx, false)
			if err != nil {
				logger.Warn("Token sweep failed", slog.Any("error", err))

				continue
			}
			logger.Info("Token sweep finished",
				slog.Int64("direct", report.ExpiredDirect),
				slog.Int64("download", report.ExpiredDownload),
			)
		}
	}
}
