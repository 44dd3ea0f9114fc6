package tokenstore

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dac-os/auth/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewSessionStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	lc := fxtest.NewLifecycle(t)

	store, err := NewSessionStore(Params{
		Lc:     lc,
		Config: &config.Config{Redis: &config.RedisConfig{Addr: mr.Addr()}},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, store)

	lc.RequireStart()
	lc.RequireStop()
}

func TestNewSessionStore_RedisRequiresAddr(t *testing.T) {
	_, err := NewSessionStore(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{TokenStore: &config.TokenStoreConfig{Provider: ProviderRedis}},
		Logger: newDiscardLogger(),
	})
	assert.Error(t, err)
}

func TestNewSessionStore_UnknownProvider(t *testing.T) {
	_, err := NewSessionStore(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{TokenStore: &config.TokenStoreConfig{Provider: "etcd"}},
		Logger: newDiscardLogger(),
	})
	assert.ErrorContains(t, err, "etcd")
}

type countingPurger struct {
	calls atomic.Int32
	err   error
}

func (p *countingPurger) DeleteExpired(context.Context, time.Time) (int64, error) {
	p.calls.Add(1)

	return 1, p.err
}

func TestPurgeExpiredLoop_RunsUntilCancelled(t *testing.T) {
	for _, purgeErr := range []error{nil, errors.New("db down")} {
		purger := &countingPurger{err: purgeErr}
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})

		go func() {
			defer close(done)
			purgeExpiredLoop(ctx, newDiscardLogger(), purger, 5*time.Millisecond)
		}()

		require.Eventually(t, func() bool { return purger.calls.Load() >= 2 }, time.Second, time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("purge loop did not stop")
		}
	}
}
