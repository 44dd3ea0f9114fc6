package postgres

import (
	"context"

	"github.com/dac-os/auth/internal/domain/entity"
	domainerrors "github.com/dac-os/auth/internal/domain/errors"
	"github.com/dac-os/auth/internal/domain/repository"
	"github.com/dac-os/auth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *profileRepository) FindBySlug(ctx context.Context, slug string) (*entity.Profile, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *profileRepository) findOne(ctx context.Context, query string, arg any) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).Where(query, arg).Take(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

func (repo *profileRepository) List(ctx context.Context, offset, limit int) ([]*entity.Profile, error) {
	var profileMs []*model.ProfileModel
	err := repo.db.WithContext(ctx).
		Order("slug").
		Offset(offset).
		Limit(limit).
		Find(&profileMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileMs))
	for _, profileM := range profileMs {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrProfileConflict, "profile %s", profile.Slug)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(profileM).
		Select("name", "slug", "permissions", "updated_at").
		Updates(profileM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrProfileConflict, "profile %s", profile.Slug)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *profileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProfileModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Permissions: append([]string{}, data.Permissions...),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel for persistence.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	permissions := data.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	return &model.ProfileModel{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Permissions: permissions,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
