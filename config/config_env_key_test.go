package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"store": map[string]any{
			"supportPhone": "",
		},
		"realtime": map[string]any{
			"reconcileInterval": "30s",
			"postgresDsn":       "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STORE_SUPPORTPHONE", want: "store.supportPhone"},
		{envKey: "REALTIME_RECONCILEINTERVAL", want: "realtime.reconcileInterval"},
		{envKey: "REALTIME_POSTGRESDSN", want: "realtime.postgresDsn"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	ApplyDefaults(cfg)

	assert.Equal(t, 45*time.Minute, cfg.Orders.PreparationWindow)
	assert.Equal(t, defaultSupportPhone, cfg.Store.SupportPhone)
	assert.Equal(t, "18:00", cfg.Store.DefaultOpeningTime)
	assert.Equal(t, "23:00", cfg.Store.DefaultClosingTime)
	assert.Equal(t, defaultRealtimeChannel, cfg.Realtime.Channel)
	assert.Equal(t, defaultRealtimeBuffer, cfg.Realtime.BufferSize)
	assert.Equal(t, 30*time.Second, cfg.Realtime.ReconcileInterval)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Nil(t, cfg.Redis)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Orders:   &OrdersConfig{PreparationWindow: 30 * time.Minute},
		Store:    &StoreConfig{SupportPhone: "+1 555 0100"},
		Redis:    &RedisConfig{Addr: "localhost:6379"},
		Realtime: &RealtimeConfig{Provider: "redis", BufferSize: 4},
	}

	ApplyDefaults(cfg)

	assert.Equal(t, 30*time.Minute, cfg.Orders.PreparationWindow)
	assert.Equal(t, "+1 555 0100", cfg.Store.SupportPhone)
	assert.Equal(t, 24*time.Hour, cfg.Redis.CartTTL)
	assert.Equal(t, "redis", cfg.Realtime.Provider)
	assert.Equal(t, 4, cfg.Realtime.BufferSize)
}
