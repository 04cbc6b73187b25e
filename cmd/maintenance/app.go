package main

import (
	"context"
	"os"

	"arthurflix/config"
	logs "arthurflix/internal/infra/log"
	"arthurflix/internal/infra/persistence/postgres"
	"arthurflix/internal/usecase"
	"arthurflix/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// withCommands starts the data layer, runs fn and stops everything again.
func withCommands(ctx context.Context, fn func(*commands) error) error {
	var (
		db          *gorm.DB
		maintenance usecase.MaintenanceUsecase
		membership  usecase.MembershipUsecase
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewLibraryRepository,
			postgres.NewCatalogueRepository,
			postgres.NewTokenRepository,
			postgres.NewMembershipKeyRepository,
			postgres.NewTransactionManager,
			impl.NewMaintenanceService,
			impl.NewMembershipService,
		),
		fx.Populate(&db, &maintenance, &membership),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() {
		_ = app.Stop(context.Background())
	}()

	return fn(&commands{
		maintenance: maintenance,
		membership:  membership,
		migrateDB:   func(ctx context.Context) error { return postgres.Migrate(ctx, db) },
		out:         os.Stdout,
	})
}
