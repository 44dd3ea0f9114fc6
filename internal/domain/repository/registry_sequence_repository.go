package repository

import "context"

// RegistrySequenceRepository hands out registry sequences, one counter per calendar year.
type RegistrySequenceRepository interface {
	// Next atomically advances the counter for year and returns the new value.
	// The counter never returns a sequence already used by an existing registry number of that year,
	// and the row stays locked until the surrounding transaction ends.
	Next(ctx context.Context, year int) (int, error)
}
