// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/dac-os/auth/internal/domain/entity"
)

// --- Input DTOs ---

// CreateAccountInput defines the data required to register a new account.
type CreateAccountInput struct {
	Password    string
	ProfileSlug string // Optional; empty leaves the account without permissions.
	Name        string
	Gender      string
	Email       string
	Phones      []string
	Addresses   []entity.Address
	BirthDate   *time.Time
}

// UpdateAccountInput replaces the personal data of an account.
// An empty Password keeps the current one.
type UpdateAccountInput struct {
	Password  string
	Name      string
	Gender    string
	Email     string
	Phones    []string
	Addresses []entity.Address
	BirthDate *time.Time
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Create registers a new account and assigns its registry number.
	Create(ctx context.Context, input CreateAccountInput) (*entity.Account, error)

	// List returns one page of accounts; page is zero-based.
	List(ctx context.Context, page int) ([]*entity.Account, error)

	// GetByRegistry returns the account with the given registry number.
	GetByRegistry(ctx context.Context, registry string) (*entity.Account, error)

	// UpdateMe rewrites the caller's own account. The registry number never changes.
	UpdateMe(ctx context.Context, account *entity.Account, input UpdateAccountInput) (*entity.Account, error)
}
