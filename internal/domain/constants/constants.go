// Package constants holds configuration values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers (order events consumed by the notifier worker).
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Realtime change feed providers.
const (
	RealtimeProviderMemory   = "memory"
	RealtimeProviderPostgres = "postgres"
	RealtimeProviderRedis    = "redis"
)

// Default actor labels stamped on store settings and order rows.
const (
	ActorSystem   = "system"
	ActorStaff    = "Staff"
	ActorCustomer = "Customer"
)
