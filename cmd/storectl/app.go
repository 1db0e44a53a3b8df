package main

import (
	"context"
	"log/slog"

	"pizzeria/config"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/infra/auth"
	logs "pizzeria/internal/infra/log"
	"pizzeria/internal/infra/metrics"
	"pizzeria/internal/infra/persistence/postgres"
	"pizzeria/internal/infra/realtime"
	"pizzeria/internal/usecase"
	"pizzeria/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// ctlDeps is what the subcommands need from the container.
type ctlDeps struct {
	fx.In

	DB        *gorm.DB
	Logger    *slog.Logger
	MenuRepo  repository.MenuRepository
	Gate      usecase.StoreStatusUsecase
	StaffAuth usecase.StaffAuthUsecase
}

// withApp starts a container with the same infrastructure as the API,
// runs fn, then stops it so lifecycle hooks close connections.
func withApp(ctx context.Context, fn func(ctx context.Context, deps *ctlDeps) error) error {
	var deps ctlDeps

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			postgres.New,
			postgres.NewTransactionManager,
			postgres.NewStoreSettingsRepository,
			postgres.NewMenuRepository,
			postgres.NewStaffRepository,
			postgres.NewStaffSessionRepository,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			metrics.NewRegistry,
			metrics.NewRecorder,
			metrics.NewMetricsRecorder,
			realtime.NewChangeFeed,
			impl.NewStoreStatusGate,
			impl.NewStaffAuthService,
		),
		fx.Invoke(func(d ctlDeps) { deps = d }),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	runErr := fn(ctx, &deps)

	if err := app.Stop(context.WithoutCancel(ctx)); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return runErr
}
