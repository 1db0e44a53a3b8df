package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMenu(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("built-in menu", func(t *testing.T) {
		items, err := parseMenu(defaultMenu, now)

		require.NoError(t, err)
		require.NotEmpty(t, items)
		for _, item := range items {
			assert.True(t, item.Available)
			assert.Equal(t, now, item.CreatedAt)
		}
	})

	t.Run("ids are stable across runs", func(t *testing.T) {
		data := []byte(`[{"name":" Margherita ","category":"Pizza","price":1099}]`)

		first, err := parseMenu(data, now)
		require.NoError(t, err)
		second, err := parseMenu(data, now.Add(time.Hour))
		require.NoError(t, err)

		assert.Equal(t, first[0].ID, second[0].ID)
		assert.Equal(t, "Margherita", first[0].Name)
		assert.Equal(t, "pizza", first[0].Category)
	})

	t.Run("explicit unavailable", func(t *testing.T) {
		items, err := parseMenu([]byte(`[{"name":"Calzone","category":"pizza","price":1200,"available":false}]`), now)

		require.NoError(t, err)
		assert.False(t, items[0].Available)
	})

	t.Run("rejects incomplete lines", func(t *testing.T) {
		_, err := parseMenu([]byte(`[{"name":"","category":"pizza","price":100}]`), now)
		assert.Error(t, err)

		_, err = parseMenu([]byte(`[{"name":"Free","category":"pizza","price":-1}]`), now)
		assert.Error(t, err)

		_, err = parseMenu([]byte(`{`), now)
		assert.Error(t, err)
	})
}
