package pubsub

import (
	"context"
	"testing"

	"github.com/dac-os/auth/config"
	"github.com/dac-os/auth/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newPublisherParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: newDiscardLogger(),
	}
}

func TestNewEventPublisher_NoopWhenUnconfigured(t *testing.T) {
	publisher, err := NewEventPublisher(newPublisherParams(t, nil))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishDirectoryEvent(context.Background(), &service.DirectoryEvent{Type: service.EventProfileDeleted}))
}

func TestNewEventPublisher_Local(t *testing.T) {
	_, err := NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{Provider: ProviderLocal}))
	require.Error(t, err)

	publisher, err := NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{
		Provider:      ProviderLocal,
		LocalEndpoint: "http://localhost:8085/events",
	}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

func TestNewEventPublisher_GoogleRequiresIDs(t *testing.T) {
	_, err := NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{Provider: ProviderGoogle}))
	assert.ErrorContains(t, err, "project ID")

	_, err = NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}))
	assert.ErrorContains(t, err, "topic ID")
}

func TestNewEventPublisher_UnknownProvider(t *testing.T) {
	_, err := NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{Provider: "kafka"}))
	assert.ErrorContains(t, err, "kafka")
}
