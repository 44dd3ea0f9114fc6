package repository

import (
	"context"

	"github.com/dac-os/auth/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrProfileNotFound is returned when no profile matches the lookup.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileConflict is returned when a profile name or slug is already taken.
	ErrProfileConflict = errors.New("profile name already exists")
)

// ProfileRepository defines the operations for profile persistence.
type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Profile, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Profile, error)
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, profile *entity.Profile) error

	// Delete removes the profile. Callers detach referencing accounts first.
	Delete(ctx context.Context, id uuid.UUID) error
}
