package realtime

import (
	"context"
	"log/slog"

	"pizzeria/config"
	"pizzeria/internal/domain/constants"
	"pizzeria/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// FeedParams holds dependencies for the ChangeFeed, injected by Fx
type FeedParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Metrics service.MetricsRecorder
	Redis   *redis.Client `optional:"true"`
}

// NewChangeFeed creates the ChangeFeed selected by realtime.provider.
func NewChangeFeed(params FeedParams) (service.ChangeFeed, error) {
	cfg := params.Config.Realtime
	logger := params.Logger

	provider := constants.RealtimeProviderMemory
	bufferSize := 0
	if cfg != nil {
		bufferSize = cfg.BufferSize
		if cfg.Provider != "" {
			provider = cfg.Provider
		}
	}

	hub := NewHub(bufferSize, params.Metrics, logger)

	switch provider {
	case constants.RealtimeProviderMemory:
		logger.Info("Using in-process realtime hub")

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return hub.Close()
			},
		})

		return hub, nil

	case constants.RealtimeProviderPostgres:
		if cfg.PostgresDSN == "" {
			return nil, errors.New("postgresDsn is required for postgres realtime provider")
		}
		logger.Info("Using PostgreSQL LISTEN/NOTIFY realtime feed", slog.String("channel", cfg.Channel))

		t, err := newPostgresTransport(params.Ctx, cfg.PostgresDSN, cfg.Channel)
		if err != nil {
			return nil, err
		}

		return registerBridge(params.Lc, newBridgeFeed(hub, t, params.Metrics, logger)), nil

	case constants.RealtimeProviderRedis:
		if params.Redis == nil {
			return nil, errors.New("redis must be configured for redis realtime provider")
		}
		logger.Info("Using Redis pub/sub realtime feed", slog.String("channel", cfg.Channel))

		return registerBridge(params.Lc, newBridgeFeed(hub, newRedisTransport(params.Redis, cfg.Channel), params.Metrics, logger)), nil

	default:
		return nil, errors.Errorf("unknown realtime provider: %s", provider)
	}
}

func registerBridge(lc fx.Lifecycle, feed *bridgeFeed) service.ChangeFeed {
	lc.Append(fx.Hook{
		OnStart: feed.Start,
		OnStop:  feed.Stop,
	})

	return feed
}
