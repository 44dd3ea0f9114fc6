package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/dac-os/auth/config"
	"github.com/dac-os/auth/internal/domain/lifecycle"
	"github.com/dac-os/auth/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the directory's primary store. Connections are verified on start and,
// when schema.migrateOnStart is set, pending migrations are applied before the server accepts traffic.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// explicit transactions only, through TransactionManager.Execute
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if migrateOnStart(params.Config) {
				params.Logger.Info("Applying schema migrations")
				if err := migrations.Up(ctx, sqlDB); err != nil {
					return err
				}
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func migrateOnStart(cfg *config.Config) bool {
	return cfg.Schema != nil && cfg.Schema.MigrateOnStart
}

// monitorDBPool reports connection waits. Account creation holds the per-year counter row
// for the length of its transaction, so pool waits are the first sign of registry contention.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if level, attrs, ok := poolWait(prev, cur); ok {
				logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWait compares two pool snapshots. It reports nothing when no caller waited in between.
func poolWait(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return slog.LevelDebug, nil, false
	}
	waitDurationDelta := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waitDurationDelta >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}

	return level, []slog.Attr{
		slog.Int64("wait_count_delta", waitDelta),
		slog.Duration("avg_wait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("open_conns", cur.OpenConnections),
		slog.Int("in_use_conns", cur.InUse),
		slog.Int("max_open_conns", cur.MaxOpenConnections),
	}, true
}
