package checkout

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velocita/storefront/internal/cart"
	"github.com/velocita/storefront/internal/cart/repository"
	catalog "github.com/velocita/storefront/internal/catalog/domain"
	"github.com/velocita/storefront/kafka"
)

type spyPublisher struct {
	mu     sync.Mutex
	events []kafka.OrderPlacedEvent
}

func (p *spyPublisher) PublishOrderPlaced(_ context.Context, event kafka.OrderPlacedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *spyPublisher) all() []kafka.OrderPlacedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]kafka.OrderPlacedEvent(nil), p.events...)
}

var testProduct = catalog.Product{
	ID: "bike", Name: "Bike", Price: 1000,
	Colors: []string{"Red"}, InStock: true,
}

func newCartStore() *cart.Store {
	return cart.NewStore("session", repository.NewMemorySnapshotStore(), nil, cart.Options{ShippingFee: 500})
}

func TestSimulator_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("order settles against the live cart and clears it", func(t *testing.T) {
		store := newCartStore()
		store.AddItem(ctx, testProduct, 1, "Red")

		publisher := &spyPublisher{}
		sim := NewSimulator(20*time.Millisecond, publisher)

		order := sim.Start(ctx, store, CustomerDetails{Name: "Asha", Email: "asha@example.com"})
		assert.Equal(t, StatusProcessing, order.Status)
		assert.NotEmpty(t, order.ID)

		// The cart stays mutable during the processing delay; the extra
		// item must be billed.
		store.AddItem(ctx, testProduct, 2, "Red")

		sim.Wait()

		completed, ok := sim.Order(order.ID)
		require.True(t, ok)
		assert.Equal(t, StatusSuccess, completed.Status)
		require.NotNil(t, completed.CompletedAt)
		assert.Equal(t, 3, completed.Totals.ItemCount)
		assert.Equal(t, int64(3000), completed.Totals.Subtotal)
		assert.Equal(t, int64(3500), completed.Totals.Total)

		assert.Empty(t, store.Items())

		events := publisher.all()
		require.Len(t, events, 1)
		assert.Equal(t, order.ID, events[0].OrderID)
		assert.Equal(t, int64(3500), events[0].Total)
		assert.Equal(t, "asha@example.com", events[0].CustomerEmail)
		require.Len(t, events[0].Lines, 1)
		assert.Equal(t, 3, events[0].Lines[0].Quantity)
	})

	t.Run("no publisher configured", func(t *testing.T) {
		store := newCartStore()
		store.AddItem(ctx, testProduct, 1, "Red")

		sim := NewSimulator(time.Millisecond, nil)
		order := sim.Start(ctx, store, CustomerDetails{Name: "Asha", Email: "a@b.c"})
		sim.Wait()

		completed, ok := sim.Order(order.ID)
		require.True(t, ok)
		assert.Equal(t, StatusSuccess, completed.Status)
	})

	t.Run("unknown order id", func(t *testing.T) {
		sim := NewSimulator(time.Millisecond, nil)
		_, ok := sim.Order("missing")
		assert.False(t, ok)
	})

	t.Run("order snapshots are isolated", func(t *testing.T) {
		store := newCartStore()
		store.AddItem(ctx, testProduct, 1, "Red")

		sim := NewSimulator(time.Millisecond, nil)
		order := sim.Start(ctx, store, CustomerDetails{Name: "A", Email: "a@b.c"})
		sim.Wait()

		first, ok := sim.Order(order.ID)
		require.True(t, ok)
		first.Status = "tampered"
		first.Lines = nil

		second, ok := sim.Order(order.ID)
		require.True(t, ok)
		assert.Equal(t, StatusSuccess, second.Status)
		assert.Len(t, second.Lines, 1)
	})
}
