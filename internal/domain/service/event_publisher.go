package service

import (
	"context"
	"time"
)

// DirectoryEventType names what changed in the directory.
type DirectoryEventType string

const (
	// EventAccountRegistered is published after a new account is committed.
	EventAccountRegistered DirectoryEventType = "account.registered"
	// EventProfileDeleted is published after a profile delete and its account detach are committed.
	EventProfileDeleted DirectoryEventType = "profile.deleted"
)

// DirectoryEvent is the payload fanned out to downstream consumers of the directory.
type DirectoryEvent struct {
	RequestID        string             `json:"request_id,omitempty"` // For distributed tracing
	Type             DirectoryEventType `json:"type"`
	AccountID        string             `json:"account_id,omitempty"`
	Registry         string             `json:"registry,omitempty"`
	ProfileSlug      string             `json:"profile_slug,omitempty"`
	DetachedAccounts int64              `json:"detached_accounts,omitempty"`
	OccurredAt       time.Time          `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDirectoryEvent publishes a directory change event
	PublishDirectoryEvent(ctx context.Context, event *DirectoryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
