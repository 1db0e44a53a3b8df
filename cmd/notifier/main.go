package main

import (
	"context"
	"log/slog"
	"os"

	"pizzeria/config"
	"pizzeria/internal/delivery"
	"pizzeria/internal/delivery/worker"
	"pizzeria/internal/delivery/worker/handler"
	"pizzeria/internal/domain/service"
	logs "pizzeria/internal/infra/log"
	"pizzeria/internal/infra/notification"
	"pizzeria/internal/infra/persistence/postgres"
	"pizzeria/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newFirebaseService,
			impl.NewOrderNotificationService,
		),
	)
}

// newFirebaseService leaves pushes disabled until a firebase project or
// credentials file is configured.
func newFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if fb := cfg.Firebase; fb == nil || (fb.ProjectID == "" && fb.CredentialsPath == "") {
		logger.Warn("Firebase not configured, order events will be acknowledged without pushes")

		return nil, nil //nolint:nilnil // notifications are optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewConsumers,
				fx.ResultTags(`group:"deliveries,flatten"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
