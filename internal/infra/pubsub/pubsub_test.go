package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arthurflix/config"
	"arthurflix/internal/domain/constants"
	"arthurflix/internal/domain/service"
	"arthurflix/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	event := &service.DownloadEvent{
		RequestID:  "req-1",
		ItemID:     "item-1",
		Quality:    "HD",
		Kind:       "direct",
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishDownloadEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "item-1", received.Message.Attributes["item_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.DownloadEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishDownloadEvent(context.Background(), &service.DownloadEvent{ItemID: "x"})
	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.PubSubConfig
		wantNoop bool
		wantErr  bool
	}{
		{name: "not configured", cfg: nil, wantNoop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, wantNoop: true},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			instrumented, ok := publisher.(*instrumentedPublisher)
			require.True(t, ok)
			_, isNoop := instrumented.next.(noopPublisher)
			assert.Equal(t, tt.wantNoop, isNoop)
		})
	}
}

type failingPublisher struct{ closed bool }

func (f *failingPublisher) PublishDownloadEvent(context.Context, *service.DownloadEvent) error {
	return errors.New("topic gone")
}

func (f *failingPublisher) Close() error {
	f.closed = true

	return nil
}

func TestInstrumentedPublisher_CountsOutcomes(t *testing.T) {
	event := &service.DownloadEvent{ItemID: "item-1", Kind: "telegram"}

	dropped := testutil.ToFloat64(metrics.EventsPublished.WithLabelValues("dropped"))
	noop := &instrumentedPublisher{next: noopPublisher{}, logger: discardLogger()}
	require.NoError(t, noop.PublishDownloadEvent(context.Background(), event))
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.EventsPublished.WithLabelValues("dropped"))-dropped, 0)

	failed := testutil.ToFloat64(metrics.EventsPublished.WithLabelValues("failed"))
	transport := &failingPublisher{}
	broken := &instrumentedPublisher{next: transport, logger: discardLogger()}
	assert.ErrorContains(t, broken.PublishDownloadEvent(context.Background(), event), "topic gone")
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.EventsPublished.WithLabelValues("failed"))-failed, 0)

	require.NoError(t, broken.Close())
	assert.True(t, transport.closed)
}
