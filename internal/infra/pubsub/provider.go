// Package pubsub fans directory events out to downstream consumers.
package pubsub

import (
	"context"
	"log/slog"

	"github.com/dac-os/auth/config"
	deliverycontext "github.com/dac-os/auth/internal/delivery/context"
	"github.com/dac-os/auth/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported values of pubsub.provider
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishDirectoryEvent(ctx context.Context, event *service.DirectoryEvent) error {
	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Event publishing disabled, dropping directory event",
		slog.String("type", string(event.Type)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates the EventPublisher selected by pubsub.provider and closes it on stop.
// An empty provider disables publishing.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := buildPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func buildPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, directory events are dropped")

		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Publishing directory events over local HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Publishing directory events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
