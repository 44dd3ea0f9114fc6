// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	domainerrors "github.com/dac-os/auth/internal/domain/errors"
	"github.com/dac-os/auth/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// AccountRepo creates a new account repository instance bound to the transaction.
func (f *gormRepositoryFactory) AccountRepo() repository.AccountRepository {
	return NewAccountRepository(f.tx)
}

// ProfileRepo creates a new profile repository instance bound to the transaction.
func (f *gormRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

// RegistrySequenceRepo creates a new registry sequence repository instance bound to the transaction.
func (f *gormRepositoryFactory) RegistrySequenceRepo() repository.RegistrySequenceRepository {
	return NewRegistrySequenceRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside one transaction. Errors returned by fn roll back and are passed through untouched,
// so callers can still match repository sentinels. Begin and commit failures surface as ErrTransactionFailed.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return domainerrors.ErrTransactionFailed.WrapMessage(fmt.Sprintf("begin: %v", tx.Error))
	}

	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return domainerrors.ErrTransactionFailed.WrapMessage(fmt.Sprintf("commit: %v", err))
	}
	committed = true

	return nil
}
