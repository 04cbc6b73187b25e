package postgres

//go:generate go run ../../../../cmd/gen -out ./query

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"arthurflix/config"
	"arthurflix/internal/domain/lifecycle"
	"arthurflix/internal/infra/metrics"
	"arthurflix/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolStatsInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

// Params are the dependencies of New.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the pool described by the postgres config section. The pool is pinged on
// start and closed on stop; while it runs, its stats are exported to Prometheus.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres")
	}
	// Multi-step writes go through TransactionManager, so gorm's implicit
	// per-statement transaction is only overhead.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get postgres sql.DB")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "failed to ping postgres")
			}

			go watchPool(watchCtx, params.Logger, sqlDB, poolStatsInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatch()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// Migrate creates or updates every table the service owns.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// watchPool exports pool gauges every interval and warns when callers waited long
// for a connection since the previous tick.
func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			recordPoolStats(logger, prev, cur)
			prev = cur
		}
	}
}

func recordPoolStats(logger *slog.Logger, prev, cur sql.DBStats) {
	metrics.DBPoolConnections.WithLabelValues("open").Set(float64(cur.OpenConnections))
	metrics.DBPoolConnections.WithLabelValues("in_use").Set(float64(cur.InUse))
	metrics.DBPoolConnections.WithLabelValues("idle").Set(float64(cur.Idle))

	waited := cur.WaitDuration - prev.WaitDuration
	if waited <= 0 {
		return
	}
	metrics.DBPoolWaitSeconds.Add(waited.Seconds())

	if waited >= poolWaitWarnAfter && logger != nil {
		logger.Warn("Postgres pool is saturated",
			slog.Int64("waits", cur.WaitCount-prev.WaitCount),
			slog.Duration("waited", waited),
			slog.Int("in_use", cur.InUse),
			slog.Int("max_open", cur.MaxOpenConnections),
		)
	}
}
