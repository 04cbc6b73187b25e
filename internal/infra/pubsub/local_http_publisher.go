package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"arthurflix/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localPublishTimeout = 5 * time.Second
	localSubscription   = "projects/local/subscriptions/download-stats"
)

// PushMessage mirrors the body Pub/Sub push subscriptions deliver, so the
// stats worker accepts the same payload from either transport.
type PushMessage struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

type PushedMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

func newPushMessage(event *service.DownloadEvent, at time.Time) (*PushMessage, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode download event")
	}
	return &PushMessage{
		Subscription: localSubscription,
		Message: PushedMessage{
			Data:        base64.StdEncoding.EncodeToString(payload),
			Attributes:  eventAttributes(event),
			MessageID:   uuid.NewString(),
			PublishTime: at.UTC().Format(time.RFC3339),
		},
	}, nil
}

// workerPusher delivers events straight to a stats worker over HTTP.
// Used in development where no Pub/Sub emulator runs.
type workerPusher struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &workerPusher{
		url:    endpoint,
		client: &http.Client{Timeout: localPublishTimeout},
		logger: logger.With(slog.String("transport", "local")),
	}
}

func (w *workerPusher) PublishDownloadEvent(ctx context.Context, event *service.DownloadEvent) error {
	msg, err := newPushMessage(event, time.Now())
	if err != nil {
		return err
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "encode push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push to %s", w.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("stats worker answered %d", resp.StatusCode)
	}

	w.logger.DebugContext(ctx, "Pushed download event to worker",
		slog.String("message_id", msg.Message.MessageID),
		slog.String("item_id", event.ItemID),
	)
	return nil
}

func (w *workerPusher) Close() error {
	return nil
}
