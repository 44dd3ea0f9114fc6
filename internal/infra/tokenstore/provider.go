package tokenstore

import (
	"context"
	"log/slog"
	"time"

	"github.com/dac-os/auth/config"
	"github.com/dac-os/auth/internal/domain/lifecycle"
	"github.com/dac-os/auth/internal/domain/repository"
	"github.com/dac-os/auth/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported values of tokenStore.provider
const (
	ProviderRedis    = "redis"
	ProviderPostgres = "postgres"
)

// Params holds dependencies for the session store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// NewSessionStore creates the SessionStore selected by configuration
func NewSessionStore(params Params) (repository.SessionStore, error) {
	cfg := params.Config.TokenStore
	provider := ProviderRedis
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	switch provider {
	case ProviderRedis:
		return newRedisSessionStore(params)
	case ProviderPostgres:
		return newPostgresSessionStore(params), nil
	default:
		return nil, errors.Errorf("unknown token store provider: %s", provider)
	}
}

func newRedisSessionStore(params Params) (repository.SessionStore, error) {
	redisCfg := params.Config.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		return nil, errors.New("redis address is required for redis token store")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Username: redisCfg.Username,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
		PoolSize: redisCfg.PoolSize,
	})

	params.Logger.Info("Using Redis session token store", slog.String("addr", redisCfg.Addr))

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisStore(client), nil
}

func newPostgresSessionStore(params Params) repository.SessionStore {
	store := postgres.NewSessionStore(params.DB)

	var interval time.Duration
	if params.Config.TokenStore != nil {
		interval = params.Config.TokenStore.CleanupInterval
	}
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	params.Logger.Info("Using Postgres session token store", slog.Duration("cleanup_interval", interval))

	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				purgeExpiredLoop(cleanupCtx, params.Logger, store, interval)
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancelCleanup()
			select {
			case <-done:
			case <-ctx.Done():
			}

			return nil
		},
	})

	return store
}

type expiredTokenPurger interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// purgeExpiredLoop deletes expired rows every interval until ctx is cancelled.
func purgeExpiredLoop(ctx context.Context, logger *slog.Logger, purger expiredTokenPurger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			purgeCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			removed, err := purger.DeleteExpired(purgeCtx, now)
			cancel()

			if err != nil {
				logger.Warn("Failed to purge expired session tokens", slog.Any("error", err))

				continue
			}
			if removed > 0 {
				logger.Debug("Purged expired session tokens", slog.Int64("removed", removed))
			}
		}
	}
}

// Module provides the session store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSessionStore),
)
