package main

import (
	"context"
	"log/slog"

	"github.com/dac-os/auth/config"
	logs "github.com/dac-os/auth/internal/infra/log"
	"github.com/dac-os/auth/internal/infra/persistence/migrations"
	"github.com/dac-os/auth/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(
			runMigrations,
		),
	).Run()
}

// runMigrations applies pending migrations once the database answers, then stops the app.
func runMigrations(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sqlDB, err := params.DB.DB()
			if err != nil {
				return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
			}

			if err := migrations.Up(ctx, sqlDB); err != nil {
				return err
			}
			params.Logger.Info("Migrations applied")

			return params.Shutdown()
		},
	})
}
