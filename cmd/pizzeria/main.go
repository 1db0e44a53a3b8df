package main

import (
	"context"
	"log/slog"
	"os"

	"pizzeria/config"
	"pizzeria/internal/delivery"
	"pizzeria/internal/delivery/api"
	apimiddleware "pizzeria/internal/delivery/api/middleware"
	"pizzeria/internal/delivery/api/router/handler"
	"pizzeria/internal/infra/auth"
	"pizzeria/internal/infra/cache"
	logs "pizzeria/internal/infra/log"
	"pizzeria/internal/infra/metrics"
	"pizzeria/internal/infra/persistence/postgres"
	"pizzeria/internal/infra/pubsub"
	"pizzeria/internal/infra/qrcode"
	"pizzeria/internal/infra/realtime"
	"pizzeria/internal/usecase/impl"

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
		injectUsecase(),
		injectMiddleware(),
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
		cache.NewRedisClient,
		metrics.NewRegistry,
		metrics.NewRecorder,
		metrics.NewMetricsRecorder,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewStoreSettingsRepository,
			fx.Annotate(
				postgres.NewMenuRepository,
				fx.ResultTags(`name:"menuStore"`),
			),
			cache.NewMenuRepository,
			cache.NewCartRepository,
			postgres.NewCustomerRepository,
			postgres.NewDeliveryAddressRepository,
			postgres.NewOrderRepository,
			postgres.NewOrderItemRepository,
			postgres.NewReviewRepository,
			postgres.NewStaffRepository,
			postgres.NewStaffSessionRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			realtime.NewChangeFeed,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewStoreStatusGate,
			impl.NewMenuService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewOrderTracker,
			impl.NewReviewService,
			impl.NewStaffAuthService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStoreHandler,
			handler.NewMenuHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewStaffOrderHandler,
			handler.NewDeviceHandler,
			handler.NewStaffAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
