package auth

import (
	"regexp"
	"testing"
	"time"

	"github.com/dac-os/auth/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenGenerator(t *testing.T, salt string) *sha1TokenGenerator {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Token = salt
	gen, err := NewSessionTokenGenerator(cfg)
	require.NoError(t, err)

	return gen.(*sha1TokenGenerator)
}

func TestSessionTokenGenerator_KnownVector(t *testing.T) {
	gen := newTestTokenGenerator(t, "token-salt")
	accountID := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	issuedAt := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "afe924ee6c6ea3368b2ab4332676078fe883311c", gen.Generate(accountID, issuedAt))
}

func TestSessionTokenGenerator_Shape(t *testing.T) {
	gen := newTestTokenGenerator(t, "token-salt")
	token := gen.Generate(uuid.New(), time.Now())

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{40}$`), token)
}

func TestSessionTokenGenerator_InputsChangeToken(t *testing.T) {
	gen := newTestTokenGenerator(t, "token-salt")
	other := newTestTokenGenerator(t, "other-salt")
	accountID := uuid.New()
	issuedAt := time.Now()

	base := gen.Generate(accountID, issuedAt)
	assert.Equal(t, base, gen.Generate(accountID, issuedAt))
	assert.NotEqual(t, base, gen.Generate(accountID, issuedAt.Add(time.Millisecond)))
	assert.NotEqual(t, base, gen.Generate(uuid.New(), issuedAt))
	assert.NotEqual(t, base, other.Generate(accountID, issuedAt))
}

func TestNewSessionTokenGenerator_RequiresSalt(t *testing.T) {
	_, err := NewSessionTokenGenerator(&config.Config{})
	assert.Error(t, err)
}
