package handler

import (
	"crypto/subtle"
	"io"
	"log/slog"
	"net/http"

	"arthurflix/config"
	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const telegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// TelegramHandler receives Bot API webhook updates.
type TelegramHandler struct {
	bot    service.BotClient
	secret string
	logger *slog.Logger
}

// NewTelegramHandler is the constructor for TelegramHandler.
func NewTelegramHandler(bot service.BotClient, cfg *config.Config, logger *slog.Logger) *TelegramHandler {
	h := &TelegramHandler{bot: bot, logger: logger}
	if cfg != nil && cfg.Telegram != nil {
		h.secret = cfg.Telegram.WebhookSecret
	}

	return h
}

// Webhook hands the raw update to the bot. Telegram retries on non-2xx answers.
func (h *TelegramHandler) Webhook(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	if h.secret != "" {
		got := c.Request().Header.Get(telegramSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			logger.Warn("Rejected webhook call with wrong secret")

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		logger.Error("Failed to read webhook body", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.bot.HandleUpdate(c.Request().Context(), payload); err != nil {
		logger.Error("Failed to process telegram update", slog.Any("error", err))

		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
