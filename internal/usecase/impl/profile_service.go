package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dac-os/auth/config"
	deliverycontext "github.com/dac-os/auth/internal/delivery/context"
	"github.com/dac-os/auth/internal/domain/entity"
	domainerrors "github.com/dac-os/auth/internal/domain/errors"
	"github.com/dac-os/auth/internal/domain/repository"
	"github.com/dac-os/auth/internal/domain/service"
	"github.com/dac-os/auth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager    repository.TransactionManager
	publisher    service.EventPublisher
	clock        service.Clock
	storeTimeout time.Duration
	pageSize     int
	logger       *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Clock     service.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:    params.TxManager,
		publisher:    params.Publisher,
		clock:        params.Clock,
		storeTimeout: storeTimeoutFrom(params.Config),
		pageSize:     pageSizeFrom(params.Config),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new profile. Its slug is derived from the name.
func (srv *profileService) Create(ctx context.Context, input usecase.ProfileInput) (*entity.Profile, error) {
	profile := &entity.Profile{}
	profile.Rename(input.Name)
	profile.SetPermissions(input.Permissions)
	if profile.Slug == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("profile name must contain a letter or digit")
	}

	writeCtx, cancel := detached(ctx, srv.storeTimeout)
	defer cancel()

	err := srv.txManager.Execute(writeCtx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProfileRepo().Create(writeCtx, profile); err != nil {
			return profileWriteError(err, profile.Slug)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create profile", slog.String("slug", profile.Slug), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Profile created", slog.String("slug", profile.Slug))

	return profile, nil
}

// List returns the given zero-based page of profiles.
func (srv *profileService) List(ctx context.Context, page int) ([]*entity.Profile, error) {
	readCtx, cancel := context.WithTimeout(ctx, srv.storeTimeout)
	defer cancel()

	var profiles []*entity.Profile
	err := srv.txManager.Execute(readCtx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profiles, err = repoFactory.ProfileRepo().List(readCtx, pageOffset(page, srv.pageSize), srv.pageSize)
		if err != nil {
			return asAppError(err, "failed to list profiles")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

// Get returns the profile with the given slug.
func (srv *profileService) Get(ctx context.Context, slug string) (*entity.Profile, error) {
	readCtx, cancel := context.WithTimeout(ctx, srv.storeTimeout)
	defer cancel()

	var profile *entity.Profile
	err := srv.txManager.Execute(readCtx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profile, err = findProfile(readCtx, repoFactory.ProfileRepo(), slug)

		return err
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// Update renames the profile and replaces its permissions. The slug follows the new name.
func (srv *profileService) Update(ctx context.Context, slug string, input usecase.ProfileInput) (*entity.Profile, error) {
	writeCtx, cancel := detached(ctx, srv.storeTimeout)
	defer cancel()

	var updated *entity.Profile
	err := srv.txManager.Execute(writeCtx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := findProfile(writeCtx, profileRepo, slug)
		if err != nil {
			return err
		}

		profile.Rename(input.Name)
		profile.SetPermissions(input.Permissions)
		if profile.Slug == "" {
			return domainerrors.ErrValidationFailed.WrapMessage("profile name must contain a letter or digit")
		}

		if err := profileRepo.Update(writeCtx, profile); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage(slug)
			}

			return profileWriteError(err, profile.Slug)
		}
		updated = profile

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the profile and nulls the profile of every account that referenced it.
// Both writes commit together or not at all.
func (srv *profileService) Delete(ctx context.Context, slug string) error {
	writeCtx, cancel := detached(ctx, srv.storeTimeout)
	defer cancel()

	var detachedCount int64
	err := srv.txManager.Execute(writeCtx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := findProfile(writeCtx, repoFactory.ProfileRepo(), slug)
		if err != nil {
			return err
		}

		detachedCount, err = repoFactory.AccountRepo().ClearProfile(writeCtx, profile.ID)
		if err != nil {
			return asAppError(err, "failed to detach accounts from profile")
		}

		if err := repoFactory.ProfileRepo().Delete(writeCtx, profile.ID); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage(slug)
			}

			return asAppError(err, "failed to delete profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete profile", slog.String("slug", slug), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Profile deleted", slog.String("slug", slug), slog.Int64("detached_accounts", detachedCount))

	event := &service.DirectoryEvent{
		RequestID:        deliverycontext.GetRequestIDFromContext(ctx),
		Type:             service.EventProfileDeleted,
		ProfileSlug:      slug,
		DetachedAccounts: detachedCount,
		OccurredAt:       srv.clock.Now().UTC(),
	}
	if err := srv.publisher.PublishDirectoryEvent(writeCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish directory event", slog.String("type", string(event.Type)), slog.Any("error", err))
	}

	return nil
}

func findProfile(ctx context.Context, repo repository.ProfileRepository, slug string) (*entity.Profile, error) {
	profile, err := repo.FindBySlug(ctx, slug)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrProfileNotFound.WrapMessage(slug)
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile")
	}

	return profile, nil
}

func profileWriteError(err error, slug string) error {
	if errors.Is(err, repository.ErrProfileConflict) {
		return domainerrors.ErrProfileAlreadyExists.WrapMessage(fmt.Sprintf("profile %q", slug))
	}

	return asAppError(err, "failed to save profile")
}
