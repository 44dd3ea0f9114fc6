// Command auth serves the account directory API.
package main

import (
	"context"
	"log/slog"

	"github.com/dac-os/auth/config"
	"github.com/dac-os/auth/internal/delivery"
	"github.com/dac-os/auth/internal/delivery/api"
	"github.com/dac-os/auth/internal/delivery/api/middleware"
	"github.com/dac-os/auth/internal/delivery/api/router/handler"
	"github.com/dac-os/auth/internal/domain/service"
	"github.com/dac-os/auth/internal/infra/auth"
	logs "github.com/dac-os/auth/internal/infra/log"
	"github.com/dac-os/auth/internal/infra/persistence/postgres"
	"github.com/dac-os/auth/internal/infra/pubsub"
	"github.com/dac-os/auth/internal/infra/tokenstore"
	"github.com/dac-os/auth/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectStores(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		pubsub.Module,
	)
}

// injectStores provides the primary store and the session token store.
func injectStores() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.New,
			postgres.NewTransactionManager,
			postgres.NewAccountRepository,
		),
		tokenstore.Module,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewBcryptHasher,
		auth.NewSessionTokenGenerator,
		fx.Annotate(
			func() service.SystemClock { return service.SystemClock{} },
			fx.As(new(service.Clock)),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewSessionService,
		impl.NewAccountService,
		impl.NewProfileService,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		middleware.NewSessionMiddleware,
		handler.NewAccountHandler,
		handler.NewProfileHandler,
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

// startServer runs every delivery in the background. A delivery that stops with an error shuts the app down.
func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				params.Logger.Error("Delivery stopped", slog.Any("error", err))
				_ = params.Shutdown(fx.ExitCode(1))
			}
		}()
	}
}
