package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arthurflix/config"
	mockService "arthurflix/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTelegramHandler_Webhook(t *testing.T) {
	const update = `{"update_id":1}`

	tests := []struct {
		name       string
		secret     string
		header     string
		handleErr  error
		expectCall bool
		wantStatus int
	}{
		{name: "processed", expectCall: true, wantStatus: http.StatusOK},
		{name: "processing failed", handleErr: errors.New("telegram down"), expectCall: true, wantStatus: http.StatusInternalServerError},
		{name: "secret matches", secret: "s3", header: "s3", expectCall: true, wantStatus: http.StatusOK},
		{name: "secret mismatch", secret: "s3", header: "nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot := mockService.NewMockBotClient(t)
			if tt.expectCall {
				bot.EXPECT().HandleUpdate(mock.Anything, []byte(update)).Return(tt.handleErr).Once()
			}
			h := NewTelegramHandler(bot, &config.Config{Telegram: &config.TelegramConfig{WebhookSecret: tt.secret}}, discardLogger())

			e := newTestEcho(t)
			req := httptest.NewRequest(http.MethodPost, "/telegram/webhook/", strings.NewReader(update))
			if tt.header != "" {
				req.Header.Set(telegramSecretHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			err := h.Webhook(e.NewContext(req, rec))

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	rec := serve(t, newTestEcho(t), HealthCheck, request{target: "/health/"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
