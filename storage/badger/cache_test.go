package badger

import (
	"context"
	"testing"

	"github.com/poiesic/cinemind/core"
	"github.com/poiesic/cinemind/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVectorCache(t *testing.T) {
	t.Run("nil backend", func(t *testing.T) {
		_, err := NewVectorCache(nil)
		assert.Error(t, err)
	})

	t.Run("valid backend", func(t *testing.T) {
		cache, err := NewMemoryVectorCache()
		require.NoError(t, err)
		defer cache.Close()
		assert.NotNil(t, cache)
	})
}

func TestVectorCacheRoundtrip(t *testing.T) {
	cache, err := NewMemoryVectorCache()
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	id := core.IDFromContent("embeddinggemma\x00Inception A mind-bending heist thriller")
	vector := []float32{0.5, -0.25, 0.125}

	t.Run("miss before put", func(t *testing.T) {
		_, err := cache.GetVector(ctx, id)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("hit after put", func(t *testing.T) {
		require.NoError(t, cache.PutVector(ctx, id, vector))

		got, err := cache.GetVector(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, vector, got)
	})

	t.Run("put replaces existing", func(t *testing.T) {
		replacement := []float32{1, 2, 3}
		require.NoError(t, cache.PutVector(ctx, id, replacement))

		got, err := cache.GetVector(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, replacement, got)
	})

	t.Run("distinct IDs are independent", func(t *testing.T) {
		other := core.IDFromContent("other text")
		_, err := cache.GetVector(ctx, other)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestVectorCacheClosed(t *testing.T) {
	cache, err := NewMemoryVectorCache()
	require.NoError(t, err)
	require.NoError(t, cache.Close())

	ctx := context.Background()
	_, err = cache.GetVector(ctx, core.IDFromContent("x"))
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = cache.PutVector(ctx, core.IDFromContent("x"), []float32{1})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
