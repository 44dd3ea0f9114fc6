package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySequenceRepository_Next(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRegistrySequenceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO registry_sequences (year, last_value, updated_at)")).
		WithArgs(2026, "2026%").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(42))

	next, err := repo.Next(context.Background(), 2026)
	require.NoError(t, err)
	assert.Equal(t, 42, next)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrySequenceRepository_NextError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRegistrySequenceRepository(db)

	boom := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO registry_sequences")).WillReturnError(boom)

	_, err := repo.Next(context.Background(), 2026)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "2026")
}

func TestNextRegistrySequenceSQL_SeedsFromExistingRegistries(t *testing.T) {
	assert.Contains(t, nextRegistrySequenceSQL, "SUBSTRING(registry FROM 5 FOR 5)")
	assert.Contains(t, nextRegistrySequenceSQL, "GREATEST(registry_sequences.last_value + 1, EXCLUDED.last_value)")
	assert.Contains(t, nextRegistrySequenceSQL, "RETURNING last_value")
}
