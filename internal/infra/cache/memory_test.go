package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

func TestMemoryCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "k", payload{Name: "ponto"}, time.Minute))

	var got payload
	found, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "ponto", got.Name)

	require.NoError(t, c.Delete(ctx, "k"))
	found, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "short", payload{Name: "a"}, time.Minute))
	require.NoError(t, c.Set(ctx, "forever", payload{Name: "b"}, 0))

	now = now.Add(2 * time.Minute)

	var got payload
	found, _ := c.Get(ctx, "short", &got)
	assert.False(t, found)

	found, _ = c.Get(ctx, "forever", &got)
	assert.True(t, found)
	assert.Equal(t, "b", got.Name)
}
