package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "github.com/dac-os/auth/internal/delivery/context"
	"github.com/dac-os/auth/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes directory events to a Cloud Pub/Sub topic with message ordering on.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to the topic and fails fast if it does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishDirectoryEvent blocks until the server acknowledges the message or ctx ends.
func (p *googlePubSubPublisher) PublishDirectoryEvent(ctx context.Context, event *service.DirectoryEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		if msg.orderingKey != "" {
			// a failed ordered publish pauses its key until resumed
			p.publisher.ResumePublish(msg.orderingKey)
		}

		return errors.Wrapf(err, "publish %s", event.Type)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Directory event published",
		slog.String("type", string(event.Type)),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
