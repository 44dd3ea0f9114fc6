package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionTTL is the fixed lifetime of a session token. Reads never extend it.
const SessionTTL = time.Hour

// SessionToken binds an opaque bearer token to an account for SessionTTL.
type SessionToken struct {
	Token     string
	AccountID uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Lifetime is the span between issue and expiry, or zero when the issue time is unknown.
func (s *SessionToken) Lifetime() time.Duration {
	if s.IssuedAt.IsZero() {
		return 0
	}

	return s.ExpiresAt.Sub(s.IssuedAt)
}

// IsExpired reports whether the token is past its expiry at now.
func (s *SessionToken) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
