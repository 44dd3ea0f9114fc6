package auth

import (
	"strings"
	"testing"

	"github.com/dac-os/auth/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Check(t *testing.T) {
	hasher, err := NewBcryptHasherWithCost("pepper", bcrypt.MinCost)
	require.NoError(t, err)
	password := "StrongPass123!"

	// Generate hash
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_PepperIsPartOfTheHash(t *testing.T) {
	hasher, err := NewBcryptHasherWithCost("pepper-a", bcrypt.MinCost)
	require.NoError(t, err)
	other, err := NewBcryptHasherWithCost("pepper-b", bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	assert.True(t, hasher.Check("secret", hash))
	assert.False(t, other.Check("secret", hash))
}

func TestBcryptHasher_LongPasswordsAreNotTruncated(t *testing.T) {
	hasher, err := NewBcryptHasherWithCost("pepper", bcrypt.MinCost)
	require.NoError(t, err)

	long := strings.Repeat("a", 100)
	hash, err := hasher.Hash(long)
	require.NoError(t, err)

	assert.True(t, hasher.Check(long, hash))
	assert.False(t, hasher.Check(long+"b", hash))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher, err := NewBcryptHasherWithCost("pepper", customCost)
	require.NoError(t, err)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)

	_, err = NewBcryptHasherWithCost("pepper", bcrypt.MaxCost+1)
	assert.Error(t, err)
}

func TestNewBcryptHasher_FromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	_, err := NewBcryptHasher(cfg)
	require.Error(t, err)

	cfg.SecretKey.Password = "pepper"
	hasher, err := NewBcryptHasher(cfg)
	require.NoError(t, err)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
