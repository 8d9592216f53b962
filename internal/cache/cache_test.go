package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "song:id:abc", []byte(`{"artist":"Queen"}`), time.Hour))

	data, err := c.Get(ctx, "song:id:abc")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"artist":"Queen"}`), data)
}

func TestMemoryCache_MissingKey(t *testing.T) {
	c := NewMemoryCache()

	data, err := c.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryCache_Expiration(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", []byte("x"), time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	data, err := c.Get(ctx, "short")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, c.Delete(ctx, "k"))

	data, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryCache_Health(t *testing.T) {
	c := NewMemoryCache()
	assert.NoError(t, c.Health(context.Background()))
	assert.NoError(t, c.Close())
}

func TestCacheError(t *testing.T) {
	inner := assert.AnError
	err := &CacheError{Operation: "get", Key: "song:id:abc", Err: inner}

	assert.Contains(t, err.Error(), "get")
	assert.Contains(t, err.Error(), "song:id:abc")
	assert.ErrorIs(t, err, inner)
}
