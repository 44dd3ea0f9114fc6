package auth

import (
	"crypto/sha1" //nolint:gosec // token derivation is a fixed wire format, not a password hash
	"encoding/hex"
	"strconv"
	"time"

	"github.com/dac-os/auth/config"
	"github.com/dac-os/auth/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sha1TokenGenerator derives session tokens as hex(SHA-1(unix millis + account id + token salt)).
type sha1TokenGenerator struct {
	salt string
}

// NewSessionTokenGenerator is the constructor for sha1TokenGenerator.
func NewSessionTokenGenerator(cfg *config.Config) (service.SessionTokenGenerator, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("token salt must be provided")
	}

	return &sha1TokenGenerator{salt: cfg.SecretKey.Token}, nil
}

// Generate returns the 40-character token for accountID at issuedAt.
// Two calls in the same millisecond for the same account yield the same token.
func (g *sha1TokenGenerator) Generate(accountID uuid.UUID, issuedAt time.Time) string {
	h := sha1.New() //nolint:gosec
	h.Write([]byte(strconv.FormatInt(issuedAt.UnixMilli(), 10)))
	h.Write([]byte(accountID.String()))
	h.Write([]byte(g.salt))

	return hex.EncodeToString(h.Sum(nil))
}
