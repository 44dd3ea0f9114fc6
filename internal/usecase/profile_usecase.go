package usecase

import (
	"context"

	"github.com/dac-os/auth/internal/domain/entity"
)

// ProfileInput carries the writable fields of a profile.
type ProfileInput struct {
	Name        string
	Permissions []string
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	Create(ctx context.Context, input ProfileInput) (*entity.Profile, error)
	List(ctx context.Context, page int) ([]*entity.Profile, error)
	Get(ctx context.Context, slug string) (*entity.Profile, error)
	Update(ctx context.Context, slug string, input ProfileInput) (*entity.Profile, error)

	// Delete removes the profile and detaches every account that referenced it, atomically.
	Delete(ctx context.Context, slug string) error
}
