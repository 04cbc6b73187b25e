package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"arthurflix/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type topicPublisher struct {
	client *pubsub.Client
	topic  *pubsub.Publisher
	logger *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	name := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: name}); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "lookup topic %s", name)
	}

	logger = logger.With(slog.String("transport", "google"), slog.String("topic", name))
	logger.Info("Publishing download events to Pub/Sub")

	return &topicPublisher{client: client, topic: client.Publisher(topicID), logger: logger}, nil
}

func (p *topicPublisher) PublishDownloadEvent(ctx context.Context, event *service.DownloadEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode download event")
	}

	id, err := p.topic.Publish(ctx, &pubsub.Message{Data: payload, Attributes: eventAttributes(event)}).Get(ctx)
	if err != nil {
		return errors.Wrap(err, "publish download event")
	}

	p.logger.DebugContext(ctx, "Published download event",
		slog.String("message_id", id),
		slog.String("item_id", event.ItemID),
	)
	return nil
}

func (p *topicPublisher) Close() error {
	p.topic.Stop()
	return errors.WithStack(p.client.Close())
}

// eventAttributes lets subscribers filter without decoding the payload.
func eventAttributes(event *service.DownloadEvent) map[string]string {
	attrs := map[string]string{
		"item_id": event.ItemID,
		"quality": event.Quality,
		"kind":    event.Kind,
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}
	return attrs
}
