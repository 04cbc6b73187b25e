package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"arthurflix/config"
	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/domain/constants"
	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/domain/repository"
	"arthurflix/internal/domain/service"
	"arthurflix/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const telegramDeepLinkBase = "https://t.me/"

// downloadService implements the DownloadUsecase interface.
type downloadService struct {
	tokens        usecase.TokenUsecase
	catalogueRepo repository.CatalogueRepository
	shortener     service.LinkShortener
	qrCode        service.QRCodeService
	bot           service.BotClient
	botUsername   string
	logger        *slog.Logger
}

// DownloadServiceParams holds dependencies for DownloadService, injected by Fx.
type DownloadServiceParams struct {
	fx.In

	Tokens        usecase.TokenUsecase
	CatalogueRepo repository.CatalogueRepository
	Shortener     service.LinkShortener
	QRCode        service.QRCodeService
	Bot           service.BotClient `optional:"true"`
	Config        *config.Config
	Logger        *slog.Logger
}

// NewDownloadService is the constructor for downloadService.
func NewDownloadService(params DownloadServiceParams) usecase.DownloadUsecase {
	var botUsername string
	if params.Config != nil && params.Config.Telegram != nil {
		botUsername = strings.TrimPrefix(params.Config.Telegram.BotUsername, "@")
	}

	return &downloadService{
		tokens:        params.Tokens,
		catalogueRepo: params.CatalogueRepo,
		shortener:     params.Shortener,
		qrCode:        params.QRCode,
		bot:           params.Bot,
		botUsername:   botUsername,
		logger:        params.Logger,
	}
}

func (srv *downloadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// username prefers the configured name and falls back to the one Telegram reports.
func (srv *downloadService) username() string {
	if srv.botUsername != "" || srv.bot == nil {
		return srv.botUsername
	}

	return srv.bot.Username()
}

// Start issues a token and routes the user through the link shortener.
func (srv *downloadService) Start(ctx context.Context, slug, quality, baseURL string) (string, error) {
	token, _, err := srv.tokens.IssueDownloadToken(ctx, slug, quality)
	if err != nil {
		return "", err
	}

	destination := strings.TrimRight(baseURL, "/") + "/dl/" + token.Token + "/"

	short, err := srv.shortener.Shorten(ctx, destination, "")
	if err != nil {
		srv.log(ctx).Warn("Link shortener failed, redirecting to the token URL",
			slog.String("destination", destination),
			slog.Any("error", err),
		)

		return destination, nil
	}

	return short, nil
}

// Resolve validates a token and returns the landing page URL.
func (srv *downloadService) Resolve(ctx context.Context, token string) (string, error) {
	record, item, err := srv.validToken(ctx, token)
	if err != nil {
		return "", err
	}

	return constants.DownloadLandingURL +
		"?token=" + url.QueryEscape(record.Token) +
		"&title=" + url.QueryEscape(item.Title) +
		"&quality=" + url.QueryEscape(string(record.Quality)), nil
}

// Landing builds the delivery options for a valid token.
func (srv *downloadService) Landing(ctx context.Context, token string) (*usecase.LandingPage, error) {
	record, item, err := srv.validToken(ctx, token)
	if err != nil {
		return nil, err
	}

	page := &usecase.LandingPage{
		Token:       record.Token,
		Title:       item.Title,
		Quality:     record.Quality,
		BotUsername: srv.username(),
	}

	if record.FileID != "" && page.BotUsername != "" {
		page.TelegramLink = telegramDeepLinkBase + page.BotUsername + "?start=" + url.QueryEscape(record.Token)

		png, err := srv.qrCode.GeneratePNG(page.TelegramLink)
		if err != nil {
			srv.log(ctx).Warn("Failed to render deep link QR code", slog.Any("error", err))
		} else {
			page.QRCodePNG = png
		}
	}

	if page.Direct, err = srv.tokens.IssueOrReuseDirectToken(ctx, item, record.Quality); err != nil {
		return nil, errors.Wrap(err, "failed to issue direct token")
	}

	return page, nil
}

// Redeem counts one use of a direct token and returns where it points.
func (srv *downloadService) Redeem(ctx context.Context, token string) (string, error) {
	validation, err := srv.tokens.RedeemDirectToken(ctx, token)
	if err != nil {
		return "", err
	}

	switch validation.State {
	case entity.TokenNotFound:
		return "", errors.WithStack(domainerrors.ErrTokenNotFound)
	case entity.TokenExpired:
		return "", errors.WithStack(domainerrors.ErrTokenExpired)
	}

	return validation.Record.DestinationURL, nil
}

func (srv *downloadService) validToken(ctx context.Context, token string) (*entity.DownloadToken, *entity.CatalogueItem, error) {
	validation, err := srv.tokens.ValidateDownloadToken(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	switch validation.State {
	case entity.TokenNotFound:
		srv.log(ctx).Info("Invalid download token requested", slog.String("token", token))

		return nil, nil, errors.WithStack(domainerrors.ErrTokenNotFound)
	case entity.TokenExpired:
		srv.log(ctx).Info("Expired download token requested", slog.String("token", token))

		return nil, nil, errors.WithStack(domainerrors.ErrTokenExpired)
	}

	item, err := srv.catalogueRepo.FindByID(ctx, validation.Record.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, nil, errors.WithStack(domainerrors.ErrTokenNotFound)
		}

		return nil, nil, errors.Wrap(err, "failed to find item")
	}

	return validation.Record, item, nil
}
