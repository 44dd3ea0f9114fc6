// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/dac-os/auth/config"
	"github.com/dac-os/auth/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// Passwords are first keyed with the server-wide password salt so a leaked hash
// table cannot be attacked without the configuration.
type bcryptHasher struct {
	pepper []byte
	cost   int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	if cfg.SecretKey.Password == "" {
		return nil, errors.New("password salt must be provided")
	}

	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cfg.SecretKey.Password, cost)
}

// NewBcryptHasherWithCost builds a hasher with an explicit bcrypt cost.
func NewBcryptHasherWithCost(pepper string, cost int) (service.PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &bcryptHasher{pepper: []byte(pepper), cost: cost}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(h.peppered(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), h.peppered(password))
	// err is nil if the password and hash match.
	return err == nil
}

// peppered keeps the bcrypt input at 64 bytes, under bcrypt's 72-byte limit.
func (h *bcryptHasher) peppered(password string) []byte {
	mac := hmac.New(sha256.New, h.pepper)
	mac.Write([]byte(password))

	return []byte(hex.EncodeToString(mac.Sum(nil)))
}
