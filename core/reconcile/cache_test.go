package reconcile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCache_IsExpired(t *testing.T) {
	assert.True(t, (&MapCache{Built: time.Now()}).IsExpired())
	assert.False(t, (&MapCache{Built: time.Now(), TTL: time.Minute}).IsExpired())
	assert.True(t, (&MapCache{Built: time.Now().Add(-2 * time.Minute), TTL: time.Minute}).IsExpired())
}

func TestGetOrLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("reuses fresh cache", func(t *testing.T) {
		store := &stubStore{where: "cache-reuse", m: Map{"A": Entry{"ucrmId": 1}}}
		defer Invalidate(store.Location())

		first, err := GetOrLoad(ctx, store, time.Minute)
		require.NoError(t, err)
		second, err := GetOrLoad(ctx, store, time.Minute)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, store.loads)
	})

	t.Run("zero ttl always loads", func(t *testing.T) {
		store := &stubStore{where: "cache-zero"}

		_, err := GetOrLoad(ctx, store, 0)
		require.NoError(t, err)
		_, err = GetOrLoad(ctx, store, 0)
		require.NoError(t, err)

		assert.Equal(t, 2, store.loads)
	})

	t.Run("invalidate forces reload", func(t *testing.T) {
		store := &stubStore{where: "cache-invalidate"}
		defer Invalidate(store.Location())

		_, err := GetOrLoad(ctx, store, time.Minute)
		require.NoError(t, err)
		Invalidate(store.Location())
		_, err = GetOrLoad(ctx, store, time.Minute)
		require.NoError(t, err)

		assert.Equal(t, 2, store.loads)
	})

	t.Run("load error is not cached", func(t *testing.T) {
		store := &stubStore{where: "cache-error", loadErr: errBoom}

		_, err := GetOrLoad(ctx, store, time.Minute)
		assert.ErrorIs(t, err, errBoom)

		store.loadErr = nil
		_, err = GetOrLoad(ctx, store, time.Minute)
		require.NoError(t, err)
		Invalidate(store.Location())
	})
}
