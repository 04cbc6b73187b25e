package impl

import (
	"context"
	"testing"
	"time"

	"arthurflix/config"
	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/domain/service"
	mockRepo "arthurflix/internal/mocks/repository"
	mockService "arthurflix/internal/mocks/service"
	mockUsecase "arthurflix/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type downloadFixture struct {
	tokens        *mockUsecase.MockTokenUsecase
	catalogueRepo *mockRepo.MockCatalogueRepository
	shortener     *mockService.MockLinkShortener
	qrCode        *mockService.MockQRCodeService
	service       *downloadService
}

func newDownloadFixture(t *testing.T, botUsername string) *downloadFixture {
	f := &downloadFixture{
		tokens:        mockUsecase.NewMockTokenUsecase(t),
		catalogueRepo: mockRepo.NewMockCatalogueRepository(t),
		shortener:     mockService.NewMockLinkShortener(t),
		qrCode:        mockService.NewMockQRCodeService(t),
	}

	f.service = NewDownloadService(DownloadServiceParams{
		Tokens:        f.tokens,
		CatalogueRepo: f.catalogueRepo,
		Shortener:     f.shortener,
		QRCode:        f.qrCode,
		Config:        &config.Config{Telegram: &config.TelegramConfig{BotUsername: botUsername}},
		Logger:        discardLogger(),
	}).(*downloadService)

	return f
}

func TestDownloadService_Start_Shortened(t *testing.T) {
	f := newDownloadFixture(t, "")
	ctx := context.Background()
	token := &entity.DownloadToken{Token: "tok-1"}

	f.tokens.EXPECT().IssueDownloadToken(ctx, "alpha", "HD").Return(token, alphaItem(), nil)
	f.shortener.EXPECT().Shorten(ctx, "https://arthurflix.example/dl/tok-1/", "").Return("https://sho.rt/x1", nil)

	got, err := f.service.Start(ctx, "alpha", "HD", "https://arthurflix.example/")

	require.NoError(t, err)
	assert.Equal(t, "https://sho.rt/x1", got)
}

func TestDownloadService_Start_ShortenerFallback(t *testing.T) {
	f := newDownloadFixture(t, "")
	ctx := context.Background()

	f.tokens.EXPECT().IssueDownloadToken(ctx, "alpha", "HD").Return(&entity.DownloadToken{Token: "tok-2"}, alphaItem(), nil)
	f.shortener.EXPECT().Shorten(ctx, mock.Anything, "").Return("", service.ErrShortenerUnavailable)

	got, err := f.service.Start(ctx, "alpha", "HD", "https://arthurflix.example")

	require.NoError(t, err)
	assert.Equal(t, "https://arthurflix.example/dl/tok-2/", got)
}

func TestDownloadService_Start_Unavailable(t *testing.T) {
	f := newDownloadFixture(t, "")
	ctx := context.Background()

	f.tokens.EXPECT().IssueDownloadToken(ctx, "alpha", "SD").
		Return(nil, nil, errors.WithStack(domainerrors.ErrQualityUnavailable))

	_, err := f.service.Start(ctx, "alpha", "SD", "https://arthurflix.example")

	assert.ErrorIs(t, err, domainerrors.ErrQualityUnavailable)
}

func TestDownloadService_Resolve(t *testing.T) {
	f := newDownloadFixture(t, "")
	ctx := context.Background()
	item := alphaItem()
	item.Title = "Alpha & Omega"
	record := &entity.DownloadToken{Token: "tok-3", ItemID: item.ID, Quality: entity.QualityHD}

	f.tokens.EXPECT().ValidateDownloadToken(ctx, "tok-3").Return(entity.ValidToken(record), nil)
	f.catalogueRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)

	got, err := f.service.Resolve(ctx, "tok-3")

	require.NoError(t, err)
	assert.Equal(t, "/download.html?token=tok-3&title=Alpha+%26+Omega&quality=HD", got)
}

func TestDownloadService_Resolve_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		validation entity.TokenValidation[entity.DownloadToken]
		wantErr    error
	}{
		{name: "unknown", validation: entity.UnknownToken[entity.DownloadToken](), wantErr: domainerrors.ErrTokenNotFound},
		{name: "expired", validation: entity.ExpiredToken[entity.DownloadToken](), wantErr: domainerrors.ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDownloadFixture(t, "")
			ctx := context.Background()
			f.tokens.EXPECT().ValidateDownloadToken(ctx, "tok").Return(tt.validation, nil)

			_, err := f.service.Resolve(ctx, "tok")

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDownloadService_Landing_WithTelegramAndDirect(t *testing.T) {
	f := newDownloadFixture(t, "@arthurflix_bot")
	ctx := context.Background()
	item := alphaItem()
	record := &entity.DownloadToken{Token: "tok-4", ItemID: item.ID, Quality: entity.QualityHD, FileID: "BQACAgIAAxkBAAIBY2Zx-file-id-value"}
	direct := &entity.DirectDownloadToken{Token: "AbCdEf123456", ExpiresAt: fixedNow.Add(24 * time.Hour)}

	f.tokens.EXPECT().ValidateDownloadToken(ctx, "tok-4").Return(entity.ValidToken(record), nil)
	f.catalogueRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	f.qrCode.EXPECT().GeneratePNG("https://t.me/arthurflix_bot?start=tok-4").Return([]byte{0x89, 'P', 'N', 'G'}, nil)
	f.tokens.EXPECT().IssueOrReuseDirectToken(ctx, item, entity.QualityHD).Return(direct, nil)

	page, err := f.service.Landing(ctx, "tok-4")

	require.NoError(t, err)
	assert.Equal(t, "arthurflix_bot", page.BotUsername)
	assert.Equal(t, "https://t.me/arthurflix_bot?start=tok-4", page.TelegramLink)
	assert.NotEmpty(t, page.QRCodePNG)
	assert.Same(t, direct, page.Direct)
}

func TestDownloadService_Landing_UsernameFromBot(t *testing.T) {
	f := newDownloadFixture(t, "")
	bot := mockService.NewMockBotClient(t)
	f.service.bot = bot
	ctx := context.Background()
	item := alphaItem()
	record := &entity.DownloadToken{Token: "tok-6", ItemID: item.ID, Quality: entity.QualityHD, FileID: "BQACAgIAAxkBAAIBY2Zx-file-id-value"}

	bot.EXPECT().Username().Return("reported_bot")
	f.tokens.EXPECT().ValidateDownloadToken(ctx, "tok-6").Return(entity.ValidToken(record), nil)
	f.catalogueRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	f.qrCode.EXPECT().GeneratePNG("https://t.me/reported_bot?start=tok-6").Return([]byte{0x89}, nil)
	f.tokens.EXPECT().IssueOrReuseDirectToken(ctx, item, entity.QualityHD).Return(nil, nil)

	page, err := f.service.Landing(ctx, "tok-6")

	require.NoError(t, err)
	assert.Equal(t, "https://t.me/reported_bot?start=tok-6", page.TelegramLink)
}

func TestDownloadService_Landing_NoTelegramFile(t *testing.T) {
	f := newDownloadFixture(t, "arthurflix_bot")
	ctx := context.Background()
	item := alphaItem()
	record := &entity.DownloadToken{Token: "tok-5", ItemID: item.ID, Quality: entity.QualityHD}

	f.tokens.EXPECT().ValidateDownloadToken(ctx, "tok-5").Return(entity.ValidToken(record), nil)
	f.catalogueRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	f.tokens.EXPECT().IssueOrReuseDirectToken(ctx, item, entity.QualityHD).Return(nil, nil)

	page, err := f.service.Landing(ctx, "tok-5")

	require.NoError(t, err)
	assert.Empty(t, page.TelegramLink)
	assert.Nil(t, page.Direct)
}

func TestDownloadService_Redeem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		f := newDownloadFixture(t, "")
		ctx := context.Background()
		record := &entity.DirectDownloadToken{Token: "AbCdEf123456", DestinationURL: "https://cdn.example.com/alpha-hd.mp4", AccessCount: 1}
		f.tokens.EXPECT().RedeemDirectToken(ctx, record.Token).Return(entity.ValidToken(record), nil)

		got, err := f.service.Redeem(ctx, record.Token)

		require.NoError(t, err)
		assert.Equal(t, record.DestinationURL, got)
	})

	t.Run("expired", func(t *testing.T) {
		f := newDownloadFixture(t, "")
		ctx := context.Background()
		f.tokens.EXPECT().RedeemDirectToken(ctx, "old").Return(entity.ExpiredToken[entity.DirectDownloadToken](), nil)

		_, err := f.service.Redeem(ctx, "old")

		assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	})

	t.Run("unknown", func(t *testing.T) {
		f := newDownloadFixture(t, "")
		ctx := context.Background()
		f.tokens.EXPECT().RedeemDirectToken(ctx, "nope").Return(entity.UnknownToken[entity.DirectDownloadToken](), nil)

		_, err := f.service.Redeem(ctx, "nope")

		assert.ErrorIs(t, err, domainerrors.ErrTokenNotFound)
	})
}
