// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/dac-os/auth/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrRegistryConflict is returned when an insert collides with an existing registry number.
	ErrRegistryConflict = errors.New("registry number already exists")
)

// AccountRepository defines the standard operations for account persistence.
// Lookups always load the account's profile when it has one.
type AccountRepository interface {
	// FindByID retrieves a single account by its storage identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByRegistry retrieves a single account by its registry number.
	FindByRegistry(ctx context.Context, registry string) (*entity.Account, error)

	// List returns accounts ordered by registry.
	List(ctx context.Context, offset, limit int) ([]*entity.Account, error)

	// Create persists a new account. The registry number must already be assigned.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account. The registry number is never written.
	Update(ctx context.Context, account *entity.Account) error

	// ClearProfile detaches every account from the given profile and returns how many were changed.
	ClearProfile(ctx context.Context, profileID uuid.UUID) (int64, error)
}
