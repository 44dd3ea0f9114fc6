package pubsub

import (
	"encoding/json"

	"github.com/dac-os/auth/internal/domain/service"

	"github.com/pkg/errors"
)

// directoryMessage is a DirectoryEvent ready for the wire.
type directoryMessage struct {
	data       []byte
	attributes map[string]string
	// Events about the same account or profile share an ordering key so consumers see them in commit order.
	orderingKey string
}

func encodeEvent(event *service.DirectoryEvent) (*directoryMessage, error) {
	if event == nil || event.Type == "" {
		return nil, errors.New("directory event without a type")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "marshal directory event")
	}

	return &directoryMessage{
		data:        data,
		attributes:  eventAttributes(event),
		orderingKey: orderingKey(event),
	}, nil
}

// eventAttributes builds the message attributes subscribers filter on.
func eventAttributes(event *service.DirectoryEvent) map[string]string {
	attributes := map[string]string{
		"type": string(event.Type),
	}
	if event.Registry != "" {
		attributes["registry"] = event.Registry
	}
	if event.ProfileSlug != "" {
		attributes["profile_slug"] = event.ProfileSlug
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

func orderingKey(event *service.DirectoryEvent) string {
	switch {
	case event.Registry != "":
		return "account/" + event.Registry
	case event.ProfileSlug != "":
		return "profile/" + event.ProfileSlug
	default:
		return ""
	}
}
