package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionTokenGenerator derives opaque session tokens.
// Tokens are 40 lowercase hex characters and carry no claims; the store is the only source of truth.
type SessionTokenGenerator interface {
	// Generate returns a token for accountID issued at issuedAt.
	Generate(accountID uuid.UUID, issuedAt time.Time) string
}
