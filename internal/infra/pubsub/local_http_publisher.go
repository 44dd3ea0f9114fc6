package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "github.com/dac-os/auth/internal/delivery/context"
	"github.com/dac-os/auth/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/directory-events"
	localRequestTimeout = 10 * time.Second
)

// localHTTPPublisher pushes events to a local HTTP endpoint in the Pub/Sub push format, for development.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage mirrors the body Google Pub/Sub POSTs to push subscribers.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
		OrderingKey string            `json:"orderingKey,omitempty"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localRequestTimeout},
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishDirectoryEvent(ctx context.Context, event *service.DirectoryEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	push := PubSubPushMessage{Subscription: localSubscription}
	push.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	push.Message.Attributes = msg.attributes
	push.Message.MessageID = uuid.NewString()
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339Nano)
	push.Message.OrderingKey = msg.orderingKey

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s to %s", event.Type, p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("subscriber returned non-success status: %d", resp.StatusCode)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Directory event pushed",
		slog.String("type", string(event.Type)),
		slog.String("message_id", push.Message.MessageID),
		slog.String("ordering_key", msg.orderingKey),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
