package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	var got []int
	ok, err := c.Get(ctx, "menu", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "menu", []int{1, 2}))
	ok, err = c.Get(ctx, "menu", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, got)

	now = now.Add(2 * time.Minute)
	ok, err = c.Get(ctx, "menu", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}
