package postgres

import (
	"context"
	"testing"

	domainerrors "github.com/dac-os/auth/internal/domain/errors"
	"github.com/dac-os/auth/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO registry_sequences`).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(1))
	mock.ExpectCommit()

	var next int
	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		var err error
		next, err = f.RegistrySequenceRepo().Next(context.Background(), 2014)

		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, next)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return boom
	})
	assert.True(t, errors.Is(err, boom))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_CommitFailureIsTransactionError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return nil
	})
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
