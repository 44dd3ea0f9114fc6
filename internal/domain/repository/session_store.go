package repository

import (
	"context"

	"github.com/dac-os/auth/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSessionTokenNotFound is returned when a token is unknown or has expired.
var ErrSessionTokenNotFound = errors.New("session token not found")

// SessionStore keeps the short-lived token to account mapping.
// Implementations expire entries at ExpiresAt on their own; reads never extend it.
type SessionStore interface {
	// Save stores the token until its ExpiresAt.
	Save(ctx context.Context, token *entity.SessionToken) error

	// Find returns the live entry for token, or ErrSessionTokenNotFound.
	Find(ctx context.Context, token string) (*entity.SessionToken, error)
}
