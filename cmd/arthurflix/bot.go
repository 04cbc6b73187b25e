package main

import (
	"context"
	"log/slog"

	"arthurflix/internal/domain/service"

	"go.uber.org/fx"
)

type botParams struct {
	fx.In

	Lc     fx.Lifecycle
	Bot    service.BotClient
	Logger *slog.Logger
}

// startBot initializes the Telegram bot with the rest of the process. A failure is not
// fatal: the website keeps serving and the webhook answers 500 until the token is fixed.
func startBot(params botParams) {
	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			initBot(ctx, params.Bot, params.Logger)

			return nil
		},
	})
}

func initBot(ctx context.Context, bot service.BotClient, logger *slog.Logger) {
	if err := bot.Init(ctx); err != nil {
		logger.Warn("Telegram bot unavailable", slog.Any("error", err))
	}
}
