// Package pubsub publishes download events for the stats worker.
package pubsub

import (
	"context"
	"log/slog"

	"arthurflix/config"
	"arthurflix/internal/domain/constants"
	"arthurflix/internal/domain/service"
	"arthurflix/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the transport named by pubsub.provider. Without one, events are
// dropped: stats are optional and downloads never wait on them.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	transport, err := newTransport(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	publisher := &instrumentedPublisher{next: transport, logger: params.Logger}
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(publisher.Close())
		},
	})

	return publisher, nil
}

func newTransport(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, download events are dropped")

		return noopPublisher{}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Publishing download events over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Publishing download events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

type noopPublisher struct{}

func (noopPublisher) PublishDownloadEvent(context.Context, *service.DownloadEvent) error { return nil }

func (noopPublisher) Close() error { return nil }

// instrumentedPublisher counts publish outcomes around the chosen transport.
type instrumentedPublisher struct {
	next   service.EventPublisher
	logger *slog.Logger
}

func (p *instrumentedPublisher) PublishDownloadEvent(ctx context.Context, event *service.DownloadEvent) error {
	if _, ok := p.next.(noopPublisher); ok {
		metrics.EventsPublished.WithLabelValues("dropped").Inc()

		return nil
	}

	if err := p.next.PublishDownloadEvent(ctx, event); err != nil {
		metrics.EventsPublished.WithLabelValues("failed").Inc()

		return err
	}
	metrics.EventsPublished.WithLabelValues("published").Inc()

	return nil
}

func (p *instrumentedPublisher) Close() error {
	p.logger.Info("Closing event publisher")

	return p.next.Close()
}
