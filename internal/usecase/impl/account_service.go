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
	"github.com/dac-os/auth/internal/domain/registry"
	"github.com/dac-os/auth/internal/domain/repository"
	"github.com/dac-os/auth/internal/domain/service"
	"github.com/dac-os/auth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	publisher    service.EventPublisher
	clock        service.Clock
	storeTimeout time.Duration
	pageSize     int
	maxAttempts  int
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Publisher service.EventPublisher
	Clock     service.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		publisher:    params.Publisher,
		clock:        params.Clock,
		storeTimeout: storeTimeoutFrom(params.Config),
		pageSize:     pageSizeFrom(params.Config),
		maxAttempts:  registryAttemptsFrom(params.Config),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers an account under the next registry number of the current year.
// A registry collision reruns the whole generate-and-insert transaction, up to the configured attempts.
func (srv *accountService) Create(ctx context.Context, input usecase.CreateAccountInput) (*entity.Account, error) {
	if input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("password is required")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	year := srv.clock.Now().Year()

	var lastConflict error
	for attempt := 1; attempt <= srv.maxAttempts; attempt++ {
		account := buildAccount(input, passwordHash)

		err := srv.createOnce(ctx, year, input.ProfileSlug, account)
		if err == nil {
			srv.log(ctx).Info("Account created", slog.Any("account_id", account.ID), slog.String("registry", account.Registry))
			srv.publish(ctx, &service.DirectoryEvent{
				Type:      service.EventAccountRegistered,
				AccountID: account.ID.String(),
				Registry:  account.Registry,
			})

			return account, nil
		}
		if !errors.Is(err, repository.ErrRegistryConflict) {
			return nil, err
		}

		lastConflict = err
		srv.log(ctx).Warn("Registry number collided, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", srv.maxAttempts),
			slog.Int("year", year),
		)
	}

	return nil, domainerrors.ErrIdentifierConflict.WrapMessage(
		fmt.Sprintf("gave up after %d attempts: %v", srv.maxAttempts, lastConflict),
	)
}

// createOnce runs one generate-and-insert transaction. The counter row stays locked until it ends.
func (srv *accountService) createOnce(ctx context.Context, year int, profileSlug string, account *entity.Account) error {
	writeCtx, cancel := detached(ctx, srv.storeTimeout)
	defer cancel()

	return srv.txManager.Execute(writeCtx, func(repoFactory repository.RepositoryFactory) error {
		if profileSlug != "" {
			profile, err := repoFactory.ProfileRepo().FindBySlug(writeCtx, profileSlug)
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unknown profile %q", profileSlug))
			}
			if err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to find profile")
			}
			account.ProfileID = &profile.ID
			account.Profile = profile
		}

		sequence, err := repoFactory.RegistrySequenceRepo().Next(writeCtx, year)
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to advance registry sequence")
		}
		if sequence > registry.MaxSequence {
			return domainerrors.ErrSequenceExhausted.WrapMessage(fmt.Sprintf("year %d reached sequence %d", year, sequence))
		}

		account.Registry, err = registry.Generate(year, sequence)
		if err != nil {
			return errors.Wrap(domainerrors.ErrInternalError, err.Error())
		}

		if err := repoFactory.AccountRepo().Create(writeCtx, account); err != nil {
			if errors.Is(err, repository.ErrRegistryConflict) {
				return err
			}

			return asAppError(err, "failed to create account")
		}

		return nil
	})
}

// List returns the given zero-based page of accounts ordered by registry.
func (srv *accountService) List(ctx context.Context, page int) ([]*entity.Account, error) {
	readCtx, cancel := context.WithTimeout(ctx, srv.storeTimeout)
	defer cancel()

	var accounts []*entity.Account
	err := srv.txManager.Execute(readCtx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		accounts, err = repoFactory.AccountRepo().List(readCtx, pageOffset(page, srv.pageSize), srv.pageSize)
		if err != nil {
			return asAppError(err, "failed to list accounts")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// GetByRegistry looks an account up by registry number. Malformed numbers are reported as not found.
func (srv *accountService) GetByRegistry(ctx context.Context, registryNumber string) (*entity.Account, error) {
	if err := registry.Validate(registryNumber); err != nil {
		return nil, domainerrors.ErrAccountNotFound.WrapMessage(err.Error())
	}

	readCtx, cancel := context.WithTimeout(ctx, srv.storeTimeout)
	defer cancel()

	var account *entity.Account
	err := srv.txManager.Execute(readCtx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		account, err = repoFactory.AccountRepo().FindByRegistry(readCtx, registryNumber)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage(registryNumber)
		}
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to find account by registry")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// UpdateMe replaces the caller's personal data. Registry and profile are left as they are.
func (srv *accountService) UpdateMe(ctx context.Context, current *entity.Account, input usecase.UpdateAccountInput) (*entity.Account, error) {
	if current == nil {
		return nil, domainerrors.ErrSessionRequired
	}

	passwordHash := ""
	if input.Password != "" {
		var err error
		passwordHash, err = srv.hasher.Hash(input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}
	}

	writeCtx, cancel := detached(ctx, srv.storeTimeout)
	defer cancel()

	var updated *entity.Account
	err := srv.txManager.Execute(writeCtx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(writeCtx, current.ID)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage(current.Registry)
		}
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to find account")
		}

		applyAccountUpdate(account, input, passwordHash)

		if err := accountRepo.Update(writeCtx, account); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage(current.Registry)
			}

			return asAppError(err, "failed to update account")
		}
		updated = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update account", slog.Any("account_id", current.ID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// publish fans an event out after commit. A failed publish never fails the operation.
func (srv *accountService) publish(ctx context.Context, event *service.DirectoryEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = srv.clock.Now().UTC()

	pubCtx, cancel := detached(ctx, srv.storeTimeout)
	defer cancel()

	if err := srv.publisher.PublishDirectoryEvent(pubCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish directory event", slog.String("type", string(event.Type)), slog.Any("error", err))
	}
}

func buildAccount(input usecase.CreateAccountInput, passwordHash string) *entity.Account {
	return &entity.Account{
		PasswordHash: passwordHash,
		Name:         input.Name,
		Gender:       input.Gender,
		Email:        input.Email,
		Phones:       input.Phones,
		Addresses:    input.Addresses,
		BirthDate:    input.BirthDate,
	}
}

func applyAccountUpdate(account *entity.Account, input usecase.UpdateAccountInput, passwordHash string) {
	if passwordHash != "" {
		account.PasswordHash = passwordHash
	}
	account.Name = input.Name
	account.Gender = input.Gender
	account.Email = input.Email
	account.Phones = input.Phones
	account.Addresses = input.Addresses
	account.BirthDate = input.BirthDate
}
