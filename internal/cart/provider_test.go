package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velocita/storefront/internal/cart/domain"
	"github.com/velocita/storefront/internal/cart/repository"
)

func TestFromContext(t *testing.T) {
	t.Run("fails fast outside a provider", func(t *testing.T) {
		_, err := FromContext(context.Background())
		assert.ErrorIs(t, err, domain.ErrStoreNotBound)
	})

	t.Run("returns the bound store", func(t *testing.T) {
		store := NewStore("s", repository.NewMemorySnapshotStore(), nil, Options{})
		ctx := NewContext(context.Background(), store)

		got, err := FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, store, got)
	})
}

func TestProvider_Get(t *testing.T) {
	ctx := context.Background()
	snapshots := repository.NewMemorySnapshotStore()

	t.Run("same session shares one store", func(t *testing.T) {
		provider := NewProvider(snapshots, nil, Options{})

		first := provider.Get(ctx, "session-1")
		second := provider.Get(ctx, "session-1")
		assert.Same(t, first, second)

		other := provider.Get(ctx, "session-2")
		assert.NotSame(t, first, other)
	})

	t.Run("restores the persisted snapshot on first access", func(t *testing.T) {
		provider := NewProvider(snapshots, nil, Options{})
		store := provider.Get(ctx, "returning")
		store.AddItem(ctx, productA, 2, "Red")

		// A fresh provider simulates a restart with the same backing store.
		rebooted := NewProvider(snapshots, nil, Options{})
		restored := rebooted.Get(ctx, "returning")

		require.Len(t, restored.Items(), 1)
		assert.Equal(t, 2, restored.Items()[0].Quantity)
	})
}
