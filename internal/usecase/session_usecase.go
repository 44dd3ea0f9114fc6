// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/dac-os/auth/internal/domain/entity"
)

// LoginInput carries the credentials presented with HTTP Basic auth.
type LoginInput struct {
	Registry string
	Password string
}

// SessionUsecase issues, resolves and checks session tokens.
type SessionUsecase interface {
	// Issue creates a token for account and stores it for exactly one hour.
	Issue(ctx context.Context, account *entity.Account) (string, error)

	// Validate resolves a token to its account. An empty, unknown or expired token, or one whose
	// account no longer exists, yields found == false with a nil error. err is reserved for store failures.
	Validate(ctx context.Context, token string) (account *entity.Account, found bool, err error)

	// Authorize reports whether account may perform permission. It never touches a store.
	Authorize(account *entity.Account, permission string) bool

	// Login checks credentials and issues a token.
	Login(ctx context.Context, input LoginInput) (string, error)
}
