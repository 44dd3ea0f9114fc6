package impl

import (
	"context"
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

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	store        repository.SessionStore
	accountRepo  repository.AccountRepository
	generator    service.SessionTokenGenerator
	hasher       service.PasswordHasher
	clock        service.Clock
	storeTimeout time.Duration
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Store       repository.SessionStore
	AccountRepo repository.AccountRepository
	Generator   service.SessionTokenGenerator
	Hasher      service.PasswordHasher
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		store:        params.Store,
		accountRepo:  params.AccountRepo,
		generator:    params.Generator,
		hasher:       params.Hasher,
		clock:        params.Clock,
		storeTimeout: storeTimeoutFrom(params.Config),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Issue derives a fresh token for account and stores it for entity.SessionTTL.
func (srv *sessionService) Issue(ctx context.Context, account *entity.Account) (string, error) {
	if account == nil {
		return "", errors.Wrap(domainerrors.ErrInternalError, "cannot issue a session without an account")
	}

	issuedAt := srv.clock.Now()
	entry := &entity.SessionToken{
		Token:     srv.generator.Generate(account.ID, issuedAt),
		AccountID: account.ID,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(entity.SessionTTL),
	}

	writeCtx, cancel := detached(ctx, srv.storeTimeout)
	defer cancel()

	if err := srv.store.Save(writeCtx, entry); err != nil {
		srv.log(ctx).Error("Failed to store session token", slog.Any("account_id", account.ID), slog.Any("error", err))

		return "", errors.Wrapf(domainerrors.ErrInfrastructure, "save session token for account %s: %v", account.ID, err)
	}

	srv.log(ctx).Debug("Session issued", slog.Any("account_id", account.ID), slog.Time("expires_at", entry.ExpiresAt))

	return entry.Token, nil
}

// Validate resolves token to its account without touching the token's expiry.
func (srv *sessionService) Validate(ctx context.Context, token string) (*entity.Account, bool, error) {
	if token == "" {
		return nil, false, nil
	}

	readCtx, cancel := context.WithTimeout(ctx, srv.storeTimeout)
	defer cancel()

	entry, err := srv.store.Find(readCtx, token)
	if errors.Is(err, repository.ErrSessionTokenNotFound) {
		return nil, false, nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to read session token", slog.Any("error", err))

		return nil, false, errors.Wrapf(domainerrors.ErrInfrastructure, "find session token: %v", err)
	}
	if entry.IsExpired(srv.clock.Now()) {
		return nil, false, nil
	}

	account, err := srv.accountRepo.FindByID(readCtx, entry.AccountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Debug("Session points at a removed account", slog.Any("account_id", entry.AccountID))

		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(domainerrors.ErrInfrastructure, "load session account %s: %v", entry.AccountID, err)
	}

	return account, true, nil
}

// Authorize reports whether account holds permission.
func (srv *sessionService) Authorize(account *entity.Account, permission string) bool {
	return account.Can(permission)
}

// Login checks a registry/password pair and issues a session for the matching account.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (string, error) {
	if input.Registry == "" || input.Password == "" {
		return "", domainerrors.ErrInvalidCredentials
	}

	readCtx, cancel := context.WithTimeout(ctx, srv.storeTimeout)
	defer cancel()

	account, err := srv.accountRepo.FindByRegistry(readCtx, input.Registry)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Info("Login rejected", slog.String("registry", input.Registry), slog.String("reason", "unknown registry"))

		return "", domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to find account by registry")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("registry", input.Registry), slog.String("reason", "password mismatch"))

		return "", domainerrors.ErrInvalidCredentials
	}

	return srv.Issue(ctx, account)
}
