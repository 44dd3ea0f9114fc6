package postgres

import (
	"context"

	"github.com/dac-os/auth/internal/domain/registry"
	"github.com/dac-os/auth/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// nextRegistrySequenceSQL advances the per-year counter in one statement.
// A missing row is seeded from the highest sequence already issued that year, and an existing row
// never falls behind it, so registry numbers inserted by other means cannot be handed out again.
// The upsert holds the row lock until the caller's transaction ends, serialising creators of the same year.
const nextRegistrySequenceSQL = `INSERT INTO registry_sequences (year, last_value, updated_at)
VALUES (?, (SELECT COALESCE(MAX(CAST(SUBSTRING(registry FROM 5 FOR 5) AS INTEGER)), 0) + 1 FROM accounts WHERE registry LIKE ?), now())
ON CONFLICT (year) DO UPDATE
SET last_value = GREATEST(registry_sequences.last_value + 1, EXCLUDED.last_value), updated_at = now()
RETURNING last_value`

// registrySequenceRepository implements the domain.RegistrySequenceRepository interface using GORM.
type registrySequenceRepository struct {
	db *gorm.DB
}

// NewRegistrySequenceRepository is the constructor for registrySequenceRepository.
func NewRegistrySequenceRepository(db *gorm.DB) repository.RegistrySequenceRepository {
	return &registrySequenceRepository{db: db}
}

// Next returns the next sequence for year.
func (repo *registrySequenceRepository) Next(ctx context.Context, year int) (int, error) {
	var next int
	err := repo.db.WithContext(ctx).
		Raw(nextRegistrySequenceSQL, year, registry.Prefix(year)+"%").
		Scan(&next).Error
	if err != nil {
		return 0, errors.Wrapf(err, "failed to advance registry sequence for %d", year)
	}

	return next, nil
}
