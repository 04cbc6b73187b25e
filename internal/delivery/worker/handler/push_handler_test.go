package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arthurflix/config"
	"arthurflix/internal/domain/constants"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/domain/service"
	mockUsecase "arthurflix/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockStatsUsecase) {
	stats := mockUsecase.NewMockStatsUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Stats:  stats,
	})

	return h, stats
}

func pushBody(t *testing.T, data string, attrs map[string]string) string {
	msg := PubSubMessage{Subscription: "projects/p/subscriptions/stats"}
	msg.Message.Data = data
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attrs
	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(raw)
}

func encodeEvent(t *testing.T, event *service.DownloadEvent) string {
	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.DownloadEvent{ItemID: "0b8f3c0e-6f8e-4c53-9a43-1f0f7d0c2a11", Quality: "HD", Kind: "token", RequestID: "req-9"}

	tests := []struct {
		name       string
		recordErr  error
		wantStatus int
	}{
		{name: "stored", wantStatus: http.StatusOK},
		{name: "store failure asks for redelivery", recordErr: errors.New("db down"), wantStatus: http.StatusServiceUnavailable},
		{name: "invalid event", recordErr: domainerrors.ErrValidationFailed.WithDetails("invalid kind"), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, stats := newPushHandler(t, &config.Config{})
			stats.EXPECT().RecordDownload(mock.Anything, mock.MatchedBy(func(got *service.DownloadEvent) bool {
				return got.ItemID == event.ItemID && got.Kind == "token"
			})).Return(tt.recordErr).Once()

			rec := doPush(h, pushBody(t, encodeEvent(t, event), nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "bad base64", body: pushBody(t, "%%%", nil)},
		{name: "bad event", body: pushBody(t, base64.StdEncoding.EncodeToString([]byte("[1,2]")), nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newPushHandler(t, &config.Config{})

			rec := doPush(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_VerifiesGooglePushes(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h, _ := newPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)
	h.verify = func(*http.Request) error { return errors.New("bad token") }

	rec := doPush(h, pushBody(t, "", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newPushHandler(t, &config.Config{})
	ctx := httptest.NewRequest(http.MethodPost, "/push", nil).Context()

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	assert.Equal(t, "from-attr", h.extractRequestID(ctx, &msg, &service.DownloadEvent{RequestID: "from-event"}))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(ctx, &msg, &service.DownloadEvent{RequestID: "from-event"}))

	assert.NotEmpty(t, h.extractRequestID(ctx, &msg, &service.DownloadEvent{}))
}

func TestVerifyPubSubToken_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verifyPubSubToken(req))

	req.Header.Set("Authorization", "Basic abc")
	require.Error(t, verifyPubSubToken(req))
}
