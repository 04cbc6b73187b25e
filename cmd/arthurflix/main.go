package main

import (
	"context"
	"log/slog"
	"os"

	"arthurflix/config"
	"arthurflix/internal/delivery"
	"arthurflix/internal/delivery/web"
	webmiddleware "arthurflix/internal/delivery/web/middleware"
	"arthurflix/internal/delivery/web/router/handler"
	"arthurflix/internal/infra/auth"
	logs "arthurflix/internal/infra/log"
	"arthurflix/internal/infra/persistence/postgres"
	"arthurflix/internal/infra/pubsub"
	"arthurflix/internal/infra/qrcode"
	"arthurflix/internal/infra/ratelimit"
	"arthurflix/internal/infra/shortener"
	"arthurflix/internal/infra/telegram"
	"arthurflix/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
			startSweeper,
			startBot,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSessionRepository,
			postgres.NewSessionTrackerRepository,
			postgres.NewMembershipKeyRepository,
			postgres.NewCatalogueRepository,
			postgres.NewLibraryRepository,
			postgres.NewTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTSessionService,
			qrcode.NewQRCodeService,
			shortener.NewLinkShortener,
			pubsub.NewEventPublisher,
			ratelimit.NewRateLimiter,
			telegram.NewBotClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTokenService,
			impl.NewSessionGuard,
			impl.NewAccessGate,
			impl.NewAccountService,
			impl.NewMembershipService,
			impl.NewCatalogueService,
			impl.NewLibraryService,
			impl.NewDownloadService,
			impl.NewMaintenanceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			webmiddleware.NewSessionMiddleware,
			webmiddleware.NewGateMiddleware,
			webmiddleware.NewRateLimitMiddleware,
			webmiddleware.NewSiteMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewMembershipHandler,
			handler.NewCatalogueHandler,
			handler.NewProfileHandler,
			handler.NewDownloadHandler,
			handler.NewTelegramHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				web.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
