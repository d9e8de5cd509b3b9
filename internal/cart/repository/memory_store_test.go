package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velocita/storefront/internal/cart/domain"
)

func TestMemorySnapshotStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySnapshotStore()

	t.Run("load before save", func(t *testing.T) {
		_, err := store.Load(ctx, "cart-1")
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})

	t.Run("save and load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "cart-1", []byte(`[{"quantity":1}]`)))

		data, err := store.Load(ctx, "cart-1")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[{"quantity":1}]`), data)
	})

	t.Run("save replaces the previous snapshot", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "cart-1", []byte(`[]`)))

		data, err := store.Load(ctx, "cart-1")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), data)
	})

	t.Run("loaded bytes are isolated from later saves", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "cart-2", []byte(`[1]`)))
		data, err := store.Load(ctx, "cart-2")
		require.NoError(t, err)

		data[1] = '9'
		fresh, err := store.Load(ctx, "cart-2")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[1]`), fresh)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "cart-1"))
		_, err := store.Load(ctx, "cart-1")
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)

		// Deleting an absent snapshot is fine.
		assert.NoError(t, store.Delete(ctx, "never-saved"))
	})
}
