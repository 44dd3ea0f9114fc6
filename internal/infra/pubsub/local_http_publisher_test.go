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

	"github.com/dac-os/auth/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PushesPubSubEnvelope(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.DirectoryEvent{
		RequestID:  "req-1",
		Type:       service.EventAccountRegistered,
		AccountID:  "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		Registry:   "2014000010",
		OccurredAt: time.Date(2014, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishDirectoryEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "account.registered", received.Message.Attributes["type"])
	assert.Equal(t, "2014000010", received.Message.Attributes["registry"])
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "account/2014000010", received.Message.OrderingKey)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.DirectoryEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishDirectoryEvent(context.Background(), &service.DirectoryEvent{Type: service.EventProfileDeleted})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestLocalHTTPPublisher_RejectsUntypedEvent(t *testing.T) {
	publisher := NewLocalHTTPPublisher("http://127.0.0.1:0", newDiscardLogger())

	err := publisher.PublishDirectoryEvent(context.Background(), &service.DirectoryEvent{})
	assert.ErrorContains(t, err, "without a type")
}

func TestOrderingKey(t *testing.T) {
	assert.Equal(t, "account/2026000014", orderingKey(&service.DirectoryEvent{Type: service.EventAccountRegistered, Registry: "2026000014"}))
	assert.Equal(t, "profile/professor", orderingKey(&service.DirectoryEvent{Type: service.EventProfileDeleted, ProfileSlug: "professor"}))
	assert.Empty(t, orderingKey(&service.DirectoryEvent{Type: service.EventProfileDeleted}))
}

func TestEventAttributes(t *testing.T) {
	attrs := eventAttributes(&service.DirectoryEvent{Type: service.EventProfileDeleted, ProfileSlug: "professor"})

	assert.Equal(t, map[string]string{"type": "profile.deleted", "profile_slug": "professor"}, attrs)
}
