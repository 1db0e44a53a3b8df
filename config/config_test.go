package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ConnectsToPrimaryOnly(t *testing.T) {
	cfg, err := New()

	require.NoError(t, err)
	require.NotNil(t, cfg.Postgres)
	assert.Empty(t, cfg.Postgres.Replicas)
}
