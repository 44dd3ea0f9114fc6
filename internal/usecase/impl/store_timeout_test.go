package impl

import (
	"context"
	"testing"
	"time"

	"github.com/dac-os/auth/config"
	"github.com/dac-os/auth/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stalledStore never answers; Execute only returns once its context is done.
type stalledStore struct{}

func (stalledStore) Execute(ctx context.Context, _ func(repository.RepositoryFactory) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Second):
		return nil
	}
}

func newShortTimeoutConfig() *config.Config {
	cfg := newTestConfig()
	cfg.Auth.StoreTimeout = 50 * time.Millisecond

	return cfg
}

func TestReads_GiveUpAfterStoreTimeout(t *testing.T) {
	accounts := NewAccountService(AccountServiceParams{
		TxManager: stalledStore{},
		Clock:     newFixedClock(t, testNow),
		Config:    newShortTimeoutConfig(),
		Logger:    newDiscardLogger(),
	})
	profiles := NewProfileService(ProfileServiceParams{
		TxManager: stalledStore{},
		Clock:     newFixedClock(t, testNow),
		Config:    newShortTimeoutConfig(),
		Logger:    newDiscardLogger(),
	})

	reads := map[string]func(ctx context.Context) error{
		"account list": func(ctx context.Context) error {
			_, err := accounts.List(ctx, 0)
			return err
		},
		"account by registry": func(ctx context.Context) error {
			_, err := accounts.GetByRegistry(ctx, "2026000014")
			return err
		},
		"profile list": func(ctx context.Context) error {
			_, err := profiles.List(ctx, 0)
			return err
		},
		"profile by slug": func(ctx context.Context) error {
			_, err := profiles.Get(ctx, "professor")
			return err
		},
	}

	for name, read := range reads {
		t.Run(name, func(t *testing.T) {
			start := time.Now()
			err := read(context.Background())

			require.Error(t, err)
			assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
			assert.Less(t, time.Since(start), time.Second)
		})
	}
}
