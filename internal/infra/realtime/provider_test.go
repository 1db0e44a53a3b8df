package realtime

import (
	"context"
	"testing"

	"pizzeria/config"
	"pizzeria/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewChangeFeed(t *testing.T) {
	tests := []struct {
		name     string
		realtime *config.RealtimeConfig
		wantHub  bool
		wantErr  bool
	}{
		{name: "defaults to memory", realtime: nil, wantHub: true},
		{name: "memory", realtime: &config.RealtimeConfig{Provider: "memory", BufferSize: 8}, wantHub: true},
		{name: "postgres without dsn", realtime: &config.RealtimeConfig{Provider: "postgres"}, wantErr: true},
		{name: "redis without client", realtime: &config.RealtimeConfig{Provider: "redis"}, wantErr: true},
		{name: "unknown", realtime: &config.RealtimeConfig{Provider: "smoke-signals"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			feed, err := NewChangeFeed(FeedParams{
				Lc:      lc,
				Ctx:     context.Background(),
				Config:  &config.Config{Realtime: tt.realtime},
				Logger:  discardLogger(),
				Metrics: metrics.NewRecorder(prometheus.NewRegistry()),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			_, isHub := feed.(*Hub)
			assert.Equal(t, tt.wantHub, isHub)
			lc.RequireStart().RequireStop()
		})
	}
}
