package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/velocita/storefront/internal/cart"
	"github.com/velocita/storefront/internal/cart/domain"
	"github.com/velocita/storefront/kafka"
	"github.com/velocita/storefront/pkg/logger"
)

// Status of a simulated order. There is no failure state: simulated
// payments always succeed.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
)

// CustomerDetails are the checkout form fields. They ride along on the
// order event and are otherwise opaque to the core.
type CustomerDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Order is a simulated checkout. Totals are filled in at completion from
// the live cart, so mutations during the processing delay are billed.
type Order struct {
	ID          string          `json:"id"`
	Status      Status          `json:"status"`
	Customer    CustomerDetails `json:"customer"`
	PlacedAt    time.Time       `json:"placedAt"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
	Lines       []domain.Line   `json:"lines,omitempty"`
	Totals      domain.Totals   `json:"totals"`
}

// OrderPublisher publishes completed orders to the event bus.
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
}

// Simulator fakes the payment backend with a fixed processing delay. It
// never snapshots the cart ahead of time: the order is settled against
// whatever the cart holds when the delay elapses, then the cart is cleared.
// Orders cannot be cancelled.
type Simulator struct {
	mu        sync.Mutex
	orders    map[string]*Order
	delay     time.Duration
	publisher OrderPublisher
	done      sync.WaitGroup
}

// NewSimulator creates a checkout simulator. The publisher may be nil when
// no event bus is configured.
func NewSimulator(delay time.Duration, publisher OrderPublisher) *Simulator {
	return &Simulator{
		orders:    make(map[string]*Order),
		delay:     delay,
		publisher: publisher,
	}
}

// Start begins a simulated checkout for the given cart store and returns
// the order in the processing state. Completion runs asynchronously.
func (s *Simulator) Start(ctx context.Context, store *cart.Store, customer CustomerDetails) *Order {
	order := &Order{
		ID:       uuid.NewString(),
		Status:   StatusProcessing,
		Customer: customer,
		PlacedAt: time.Now(),
	}

	s.mu.Lock()
	s.orders[order.ID] = order
	s.mu.Unlock()

	logger.Info(ctx).
		Str("order_id", order.ID).
		Str("cart_id", store.ID()).
		Dur("delay", s.delay).
		Msg("Checkout started")

	s.done.Add(1)
	go func() {
		defer s.done.Done()
		time.Sleep(s.delay)
		s.complete(store, order.ID)
	}()

	return s.snapshot(order.ID)
}

// Order returns the order with the given id.
func (s *Simulator) Order(id string) (*Order, bool) {
	s.mu.Lock()
	_, ok := s.orders[id]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}
	return s.snapshot(id), true
}

// Wait blocks until all pending checkouts have completed. Used by tests and
// shutdown.
func (s *Simulator) Wait() {
	s.done.Wait()
}

// complete settles the order against the live cart and clears it. The
// background completion carries no request context.
func (s *Simulator) complete(store *cart.Store, orderID string) {
	ctx := context.Background()

	lines := store.Items()
	totals := store.Totals()
	now := time.Now()

	s.mu.Lock()
	order := s.orders[orderID]
	order.Status = StatusSuccess
	order.CompletedAt = &now
	order.Lines = lines
	order.Totals = totals
	customer := order.Customer
	s.mu.Unlock()

	store.Clear(ctx)

	logger.Info(ctx).
		Str("order_id", orderID).
		Int("item_count", totals.ItemCount).
		Int64("total", totals.Total).
		Msg("Checkout completed")

	if s.publisher == nil {
		return
	}

	event := kafka.OrderPlacedEvent{
		OrderID:       orderID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		ItemCount:     totals.ItemCount,
		Subtotal:      totals.Subtotal,
		Shipping:      totals.Shipping,
		Total:         totals.Total,
		Currency:      "INR",
		Timestamp:     now,
	}
	for _, line := range lines {
		event.Lines = append(event.Lines, kafka.OrderLine{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Color:     line.Color,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.EffectivePrice(),
		})
	}
	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		logger.Warn(ctx).Err(err).Str("order_id", orderID).Msg("Failed to publish order event")
	}
}

// snapshot copies an order under the lock so callers never share the
// mutable record.
func (s *Simulator) snapshot(id string) *Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.orders[id]
	out := *order
	if order.Lines != nil {
		out.Lines = make([]domain.Line, len(order.Lines))
		copy(out.Lines, order.Lines)
	}
	return &out
}
