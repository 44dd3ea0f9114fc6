// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
	"gorm.io/gorm/clause"
)

// accountUpdateColumns are the columns Update may write. registry and created_at are fixed at insert.
var accountUpdateColumns = []string{
	"password_hash", "profile_id", "name", "gender", "email", "phones", "addresses", "birth_date", "updated_at",
}

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its storage identifier, preloading its profile.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByRegistry retrieves a single account by its registry number, preloading its profile.
func (repo *accountRepository) FindByRegistry(ctx context.Context, registry string) (*entity.Account, error) {
	return repo.findOne(ctx, "registry = ?", registry)
}

func (repo *accountRepository) findOne(ctx context.Context, query string, arg any) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where(query, arg).
		Take(&accountM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

// List returns a page of accounts ordered by registry.
func (repo *accountRepository) List(ctx context.Context, offset, limit int) ([]*entity.Account, error) {
	var accountMs []*model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("Profile").
		Order("registry").
		Offset(offset).
		Limit(limit).
		Find(&accountMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for _, accountM := range accountMs {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// Create persists a new account. A duplicate registry surfaces as repository.ErrRegistryConflict.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrRegistryConflict, "registry %s", account.Registry)
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("invalid profile reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the entity with the generated timestamps
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update writes every mutable column of the account. The registry column is never touched.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	result := repo.db.WithContext(ctx).
		Model(accountM).
		Select(accountUpdateColumns).
		Updates(accountM)
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("invalid profile reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// ClearProfile detaches every account from profileID.
func (repo *accountRepository) ClearProfile(ctx context.Context, profileID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("profile_id = ?", profileID).
		Update("profile_id", nil)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to detach accounts from profile")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	addresses := make([]entity.Address, 0, len(data.Addresses))
	for _, addr := range data.Addresses {
		addresses = append(addresses, entity.Address(addr))
	}

	return &entity.Account{
		ID:           data.ID,
		Registry:     data.Registry,
		PasswordHash: data.PasswordHash,
		ProfileID:    data.ProfileID,
		Profile:      toProfileDomain(data.Profile),
		Name:         data.Name,
		Gender:       data.Gender,
		Email:        data.Email,
		Phones:       append([]string{}, data.Phones...),
		Addresses:    addresses,
		BirthDate:    data.BirthDate,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
// The profile association is never written through the account.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	addresses := make([]model.AddressJSON, 0, len(data.Addresses))
	for _, addr := range data.Addresses {
		addresses = append(addresses, model.AddressJSON(addr))
	}

	phones := data.Phones
	if phones == nil {
		phones = []string{}
	}

	return &model.AccountModel{
		ID:           data.ID,
		Registry:     data.Registry,
		PasswordHash: data.PasswordHash,
		ProfileID:    data.ProfileID,
		Name:         data.Name,
		Gender:       data.Gender,
		Email:        data.Email,
		Phones:       phones,
		Addresses:    addresses,
		BirthDate:    data.BirthDate,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
