package worker

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
	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/delivery/worker/handler"
	"arthurflix/internal/domain/service"
	mockUsecase "arthurflix/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T) (http.Handler, *mockUsecase.MockStatsUsecase) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	stats := mockUsecase.NewMockStatsUsecase(t)
	push := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, Stats: stats})

	return NewEcho(logger, cfg, push), stats
}

func TestWorkerRoutes_Health(t *testing.T) {
	e, _ := newTestWorker(t)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestWorkerRoutes_Metrics(t *testing.T) {
	e, _ := newTestWorker(t)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWorkerRoutes_Push(t *testing.T) {
	e, stats := newTestWorker(t)
	stats.EXPECT().RecordDownload(mock.Anything, mock.MatchedBy(func(ev *service.DownloadEvent) bool {
		return ev.Kind == "direct"
	})).Return(nil).Once()

	raw, err := json.Marshal(&service.DownloadEvent{ItemID: "0b7f5d8e-51a4-4a39-9f3e-2ad0f3c1d111", Quality: "HD", Kind: "direct"})
	require.NoError(t, err)
	body := `{"message":{"data":"` + base64.StdEncoding.EncodeToString(raw) + `","messageId":"m-1"},"subscription":"s"}`

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWorkerRoutes_PushRejectsGet(t *testing.T) {
	e, _ := newTestWorker(t)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/push", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
