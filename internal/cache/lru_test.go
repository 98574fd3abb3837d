package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewLRU(10)

	require.NoError(t, SetJSON(ctx, c, "k", map[string]string{"title": "Hello"}, time.Minute))

	var got map[string]string
	found, err := GetJSON(ctx, c, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Hello", got["title"])

	require.NoError(t, c.Delete(ctx, "k", "missing"))
	found, err = GetJSON(ctx, c, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLRU_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewLRU(10).(*lruCache)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Second))
	_, ok, _ := c.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.items.Len())
}

func TestLRU_Eviction(t *testing.T) {
	ctx := context.Background()
	c := NewLRU(2)
	_ = c.Set(ctx, "a", []byte("1"), time.Minute)
	_ = c.Set(ctx, "b", []byte("2"), time.Minute)
	_ = c.Set(ctx, "c", []byte("3"), time.Minute)

	_, ok, _ := c.Get(ctx, "a")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "c")
	assert.True(t, ok)
}
