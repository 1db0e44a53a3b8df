package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultSupportPhone       = "+55 11 99999-0000"
	defaultOpeningTime        = "18:00"
	defaultClosingTime        = "23:00"
	defaultPreparationWindow  = 45 * time.Minute
	defaultOrderListLimit     = 100
	defaultRealtimeChannel    = "pizzeria_changes"
	defaultRealtimeBuffer     = 32
	defaultReconcileInterval  = 30 * time.Second
	defaultHeartbeatInterval  = 15 * time.Second
	defaultCartTTL            = 24 * time.Hour
	defaultMetricsPath        = "/metrics"
	defaultNotifierPort       = 8081
	defaultPushPath           = "/pubsub/push"
	defaultKafkaGroup         = "pizzeria-notifier"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Store configuration for the open/closed gate
	Store *StoreConfig `json:"store" yaml:"store"`

	// Orders configuration for the order lifecycle
	Orders *OrdersConfig `json:"orders" yaml:"orders"`

	// Realtime configuration for the change feed
	Realtime *RealtimeConfig `json:"realtime" yaml:"realtime"`

	// Redis configuration for carts and the redis change feed
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for order tracking QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Metrics configuration for the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// Notifier configuration for the push-notification worker
	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`
}

// AuthConfig defines staff authentication configuration
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTtl" yaml:"refreshTokenTtl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines the store gate configuration
type StoreConfig struct {
	// Contact shown to customers when the store is closed
	SupportPhone string `json:"supportPhone" yaml:"supportPhone"`

	// Hours stamped on the default row created on first access
	DefaultOpeningTime string `json:"defaultOpeningTime" yaml:"defaultOpeningTime"`
	DefaultClosingTime string `json:"defaultClosingTime" yaml:"defaultClosingTime"`
}

// OrdersConfig defines order lifecycle configuration
type OrdersConfig struct {
	// Added to confirmed_at to compute estimated_delivery_time
	PreparationWindow time.Duration `json:"preparationWindow" yaml:"preparationWindow"`

	// Maximum number of orders returned by the staff listing
	ListLimit int `json:"listLimit" yaml:"listLimit"`
}

// RealtimeConfig defines the change feed configuration
type RealtimeConfig struct {
	// Provider type: "memory", "postgres" (LISTEN/NOTIFY) or "redis" (PUBLISH/SUBSCRIBE)
	Provider string `json:"provider" yaml:"provider"`

	// Channel name used by the postgres and redis providers
	Channel string `json:"channel" yaml:"channel"`

	// Per-subscriber buffer; events beyond it are dropped
	BufferSize int `json:"bufferSize" yaml:"bufferSize"`

	// Interval of the pull-based reconciliation fetch that backs up the push channel
	ReconcileInterval time.Duration `json:"reconcileInterval" yaml:"reconcileInterval"`

	// Connection string for the dedicated LISTEN connection (postgres provider)
	PostgresDSN string `json:"postgresDsn" yaml:"postgresDsn"`

	// Interval between SSE keep-alive comments
	HeartbeatInterval time.Duration `json:"heartbeatInterval" yaml:"heartbeatInterval"`
}

// RedisConfig defines the redis connection
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	CartTTL  time.Duration `json:"cartTtl" yaml:"cartTtl"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "kafka" for Kafka
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Comma-separated seed brokers (for kafka provider)
	KafkaBrokers string `json:"kafkaBrokers" yaml:"kafkaBrokers"`

	// Topic name (for kafka provider)
	KafkaTopic string `json:"kafkaTopic" yaml:"kafkaTopic"`

	// Consumer group of the notifier worker (for kafka provider)
	KafkaGroup string `json:"kafkaGroup" yaml:"kafkaGroup"`
}

// NotifierConfig defines the push-notification worker
type NotifierConfig struct {
	// Port of the Pub/Sub push endpoint
	Port int `json:"port" yaml:"port"`

	// Path of the Pub/Sub push endpoint
	PushPath string `json:"pushPath" yaml:"pushPath"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	ApplyDefaults(cfg)

	return cfg, nil
}

// ApplyDefaults fills optional sections so downstream constructors never see nil.
func ApplyDefaults(cfg *Config) {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = 15 * time.Minute
	}
	if cfg.Auth.RefreshTokenTTL <= 0 {
		cfg.Auth.RefreshTokenTTL = 7 * 24 * time.Hour
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.SupportPhone == "" {
		cfg.Store.SupportPhone = defaultSupportPhone
	}
	if cfg.Store.DefaultOpeningTime == "" {
		cfg.Store.DefaultOpeningTime = defaultOpeningTime
	}
	if cfg.Store.DefaultClosingTime == "" {
		cfg.Store.DefaultClosingTime = defaultClosingTime
	}

	if cfg.Orders == nil {
		cfg.Orders = &OrdersConfig{}
	}
	if cfg.Orders.PreparationWindow <= 0 {
		cfg.Orders.PreparationWindow = defaultPreparationWindow
	}
	if cfg.Orders.ListLimit <= 0 {
		cfg.Orders.ListLimit = defaultOrderListLimit
	}

	if cfg.Realtime == nil {
		cfg.Realtime = &RealtimeConfig{}
	}
	if cfg.Realtime.Channel == "" {
		cfg.Realtime.Channel = defaultRealtimeChannel
	}
	if cfg.Realtime.BufferSize <= 0 {
		cfg.Realtime.BufferSize = defaultRealtimeBuffer
	}
	if cfg.Realtime.ReconcileInterval <= 0 {
		cfg.Realtime.ReconcileInterval = defaultReconcileInterval
	}
	if cfg.Realtime.HeartbeatInterval <= 0 {
		cfg.Realtime.HeartbeatInterval = defaultHeartbeatInterval
	}

	if cfg.Redis != nil && cfg.Redis.CartTTL <= 0 {
		cfg.Redis.CartTTL = defaultCartTTL
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}

	if cfg.PubSub != nil && cfg.PubSub.KafkaGroup == "" {
		cfg.PubSub.KafkaGroup = defaultKafkaGroup
	}

	if cfg.Notifier == nil {
		cfg.Notifier = &NotifierConfig{}
	}
	if cfg.Notifier.Port == 0 {
		cfg.Notifier.Port = defaultNotifierPort
	}
	if cfg.Notifier.PushPath == "" {
		cfg.Notifier.PushPath = defaultPushPath
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
