// Package telegram delivers uploaded files through the Telegram Bot API.
package telegram

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"arthurflix/config"
	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/domain/entity"
	"arthurflix/internal/domain/service"
	"arthurflix/internal/usecase"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTimeout = 15 * time.Second

	helpText        = "Pick a title on the website and press the Telegram button to get your file here."
	invalidLinkText = "This download link is invalid or has expired. Please request a new one from the website."
	noFileText      = "This file is not available on Telegram. Please use the direct download link instead."
)

// botClient answers webhook updates. The Bot API handle is created once, at startup,
// and a failed creation is remembered, so a bad token fails every update the same way.
type botClient struct {
	token      string
	endpoint   string
	username   string
	httpClient *http.Client
	tokens     usecase.TokenUsecase
	publisher  service.EventPublisher
	logger     *slog.Logger

	once    sync.Once
	api     *tgbotapi.BotAPI
	initErr error
}

// BotClientParams holds dependencies for the bot client, injected by Fx.
type BotClientParams struct {
	fx.In

	Config    *config.Config
	Tokens    usecase.TokenUsecase
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewBotClient builds the client without contacting Telegram.
func NewBotClient(params BotClientParams) service.BotClient {
	b := &botClient{
		endpoint:   tgbotapi.APIEndpoint,
		httpClient: &http.Client{Timeout: defaultTimeout},
		tokens:     params.Tokens,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}

	if cfg := params.Config.Telegram; cfg != nil {
		b.token = cfg.BotToken
		b.username = strings.TrimPrefix(cfg.BotUsername, "@")
		if cfg.APIEndpoint != "" {
			b.endpoint = cfg.APIEndpoint
		}
		if cfg.Timeout > 0 {
			b.httpClient.Timeout = cfg.Timeout
		}
	}

	return b
}

// Init creates the Bot API handle. The webhook handler uses the same guarded routine,
// so a process that skipped Init still initializes exactly once.
func (b *botClient) Init(_ context.Context) error {
	_, err := b.botAPI()

	return err
}

func (b *botClient) botAPI() (*tgbotapi.BotAPI, error) {
	b.once.Do(func() {
		if b.token == "" {
			b.initErr = errors.New("telegram bot token not configured")

			return
		}

		api, err := tgbotapi.NewBotAPIWithClient(b.token, b.endpoint, b.httpClient)
		if err != nil {
			b.initErr = errors.Wrap(err, "failed to initialize telegram bot")

			return
		}
		b.api = api
		b.logger.Info("Telegram bot initialized", slog.String("username", api.Self.UserName))
	})

	return b.api, b.initErr
}

// Username returns the configured bot name, or the name Telegram reported once initialized.
func (b *botClient) Username() string {
	if b.username != "" {
		return b.username
	}

	api, err := b.botAPI()
	if err != nil {
		return ""
	}

	return api.Self.UserName
}

// HandleUpdate answers one webhook update. Updates without a message are ignored.
func (b *botClient) HandleUpdate(ctx context.Context, payload []byte) error {
	var update tgbotapi.Update
	if err := json.Unmarshal(payload, &update); err != nil {
		return errors.Wrap(err, "failed to decode update")
	}

	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return nil
	}

	api, err := b.botAPI()
	if err != nil {
		return err
	}

	if msg.IsCommand() && msg.Command() == "start" {
		if token := strings.TrimSpace(msg.CommandArguments()); token != "" {
			return b.sendFile(ctx, api, msg.Chat.ID, token)
		}
	}

	return b.reply(api, msg.Chat.ID, helpText)
}

func (b *botClient) sendFile(ctx context.Context, api *tgbotapi.BotAPI, chatID int64, token string) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, b.logger)

	validation, err := b.tokens.ValidateDownloadToken(ctx, token)
	if err != nil {
		return errors.Wrap(err, "failed to validate download token")
	}
	if !validation.IsValid() {
		logger.Info("Telegram start with unusable token", slog.String("state", validation.State.String()))

		return b.reply(api, chatID, invalidLinkText)
	}

	record := validation.Record
	if record.FileID == "" {
		return b.reply(api, chatID, noFileText)
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileID(record.FileID))
	if _, err := api.Send(doc); err != nil {
		return errors.Wrap(err, "failed to send document")
	}

	logger.Info("Sent file through telegram",
		slog.Any("item_id", record.ItemID),
		slog.String("quality", string(record.Quality)),
	)
	b.publish(ctx, record)

	return nil
}

func (b *botClient) reply(api *tgbotapi.BotAPI, chatID int64, text string) error {
	if _, err := api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return errors.Wrap(err, "failed to send message")
	}

	return nil
}

func (b *botClient) publish(ctx context.Context, record *entity.DownloadToken) {
	if b.publisher == nil {
		return
	}

	event := &service.DownloadEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		ItemID:     record.ItemID.String(),
		Quality:    string(record.Quality),
		Kind:       string(entity.DownloadKindTelegram),
		Token:      record.Token,
		OccurredAt: time.Now().UTC(),
	}
	if err := b.publisher.PublishDownloadEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, b.logger).Warn("Failed to publish download event",
			slog.String("item_id", event.ItemID),
			slog.Any("error", err),
		)
	}
}
