package usecase

import (
	"context"

	"arthurflix/internal/domain/entity"
)

// LandingPage is the page a user reaches once the short link has been passed.
type LandingPage struct {
	Token        string
	Title        string
	Quality      entity.Quality
	BotUsername  string
	TelegramLink string // empty when the quality has no Telegram file
	QRCodePNG    []byte
	Direct       *entity.DirectDownloadToken
}

// DownloadUsecase drives the download flow from the detail page to the landing page.
type DownloadUsecase interface {
	// Start issues a download token and returns where to send the user: the short link,
	// or the token URL itself when shortening fails.
	Start(ctx context.Context, slug, quality, baseURL string) (string, error)

	// Resolve checks a token reached through the short link and returns the landing page URL.
	Resolve(ctx context.Context, token string) (string, error)

	// Landing builds the landing page for a valid token.
	Landing(ctx context.Context, token string) (*LandingPage, error)

	// Redeem counts one use of a direct token and returns its destination URL.
	Redeem(ctx context.Context, token string) (string, error)
}
