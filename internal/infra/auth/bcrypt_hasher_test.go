package auth

import (
	"testing"

	"pizzeria/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasherConfig(cost int) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{BcryptCost: cost}}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	password := "Margherita#2024"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("Calabresa#2024", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_CheckRejectsMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	assert.False(t, hasher.Check("password", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_CostFallback(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "nil config", cfg: nil, want: bcrypt.DefaultCost},
		{name: "zero cost", cfg: newTestHasherConfig(0), want: bcrypt.DefaultCost},
		{name: "too high", cfg: newTestHasherConfig(bcrypt.MaxCost + 1), want: bcrypt.DefaultCost},
		{name: "configured", cfg: newTestHasherConfig(bcrypt.MinCost + 1), want: bcrypt.MinCost + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}

func TestBcryptHasher_NeedsRehash(t *testing.T) {
	oldHasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))
	newHasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost + 1))

	hash, err := oldHasher.Hash("password")
	require.NoError(t, err)

	assert.False(t, oldHasher.NeedsRehash(hash))
	assert.True(t, newHasher.NeedsRehash(hash))
	assert.True(t, newHasher.NeedsRehash("garbage"))
}
