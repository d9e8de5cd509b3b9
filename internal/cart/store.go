package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/velocita/storefront/internal/cart/domain"
	catalog "github.com/velocita/storefront/internal/catalog/domain"
	"github.com/velocita/storefront/pkg/logger"
)

// Options configure a cart store.
type Options struct {
	// ShippingFee is the flat fee charged for any non-empty cart.
	ShippingFee int64

	// VariantScopedRemoval makes RemoveItem and UpdateQuantity match the
	// full (product id, color) line key instead of the historical
	// product-id-only scope.
	VariantScopedRemoval bool
}

// Store is the single source of truth for one shopping cart. All mutations
// are total: invalid input is normalized, unknown ids no-op. Every
// successful mutation persists a snapshot and emits a notification.
type Store struct {
	mu          sync.Mutex
	restoreOnce sync.Once
	id          string
	lines       []domain.Line
	snapshots   domain.SnapshotStore
	notifier    domain.Notifier
	opts        Options
}

// NewStore creates an empty cart store. Call Restore before serving reads
// so a previously persisted session is recovered.
func NewStore(id string, snapshots domain.SnapshotStore, notifier domain.Notifier, opts Options) *Store {
	if opts.ShippingFee == 0 {
		opts.ShippingFee = domain.DefaultShippingFee
	}
	return &Store{
		id:        id,
		snapshots: snapshots,
		notifier:  notifier,
		opts:      opts,
	}
}

// ID returns the cart's session identifier.
func (s *Store) ID() string {
	return s.id
}

// Restore loads the persisted snapshot for this cart. A missing snapshot
// yields an empty cart; a corrupted one is discarded with a warning and the
// cart starts empty. Restore never fails the caller and runs at most once
// per store.
func (s *Store) Restore(ctx context.Context) {
	s.restoreOnce.Do(func() { s.restore(ctx) })
}

func (s *Store) restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.snapshots.Load(ctx, s.id)
	if err != nil {
		if !errors.Is(err, domain.ErrSnapshotNotFound) {
			logger.Warn(ctx).Err(err).Str("cart_id", s.id).Msg("Failed to load cart snapshot")
		}
		return
	}

	lines, err := DecodeLines(data)
	if err != nil {
		logger.Warn(ctx).Err(err).Str("cart_id", s.id).Msg("Discarding corrupted cart snapshot")
		if err := s.snapshots.Delete(ctx, s.id); err != nil {
			logger.Warn(ctx).Err(err).Str("cart_id", s.id).Msg("Failed to delete corrupted snapshot")
		}
		return
	}

	s.lines = lines
}

// AddItem merges quantity into the line keyed by (product.ID, color) or
// appends a new line in insertion order. A quantity below one counts as one.
func (s *Store) AddItem(ctx context.Context, product catalog.Product, quantity int, color string) []domain.Line {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	var n domain.Notification
	merged := false
	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID && s.lines[i].Color == color {
			s.lines[i].Quantity += quantity
			n = domain.Notification{
				Title:       "Cart updated",
				Description: fmt.Sprintf("%s quantity updated to %d", product.Name, s.lines[i].Quantity),
			}
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, domain.Line{Product: product, Quantity: quantity, Color: color})
		n = domain.Notification{
			Title:       "Added to cart",
			Description: fmt.Sprintf("%d x %s added to your cart", quantity, product.Name),
		}
	}
	s.persistLocked(ctx)
	items := s.itemsLocked()
	s.mu.Unlock()

	s.notify(ctx, n)
	return items
}

// RemoveItem removes the line(s) matching the product id. When the store is
// variant-scoped, only the line with the given color is removed. A removal
// notification is emitted even when nothing matched.
func (s *Store) RemoveItem(ctx context.Context, productID, color string) []domain.Line {
	s.mu.Lock()
	kept := s.lines[:0]
	for _, line := range s.lines {
		if s.matches(&line, productID, color) {
			continue
		}
		kept = append(kept, line)
	}
	s.lines = kept
	s.persistLocked(ctx)
	items := s.itemsLocked()
	s.mu.Unlock()

	s.notify(ctx, domain.Notification{
		Title:       "Item removed",
		Description: "Product removed from your cart",
	})
	return items
}

// UpdateQuantity sets the quantity of the matching line(s) to the given
// value. A quantity of zero or less behaves exactly like RemoveItem.
func (s *Store) UpdateQuantity(ctx context.Context, productID, color string, quantity int) []domain.Line {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID, color)
	}

	s.mu.Lock()
	for i := range s.lines {
		if s.matches(&s.lines[i], productID, color) {
			s.lines[i].Quantity = quantity
		}
	}
	s.persistLocked(ctx)
	items := s.itemsLocked()
	s.mu.Unlock()

	return items
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.lines = nil
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(ctx, domain.Notification{
		Title:       "Cart cleared",
		Description: "All items have been removed from your cart",
	})
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []domain.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsLocked()
}

// Totals derives the cart totals from the current lines. The result is
// never cached.
func (s *Store) Totals() domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ComputeTotals(s.lines, s.opts.ShippingFee)
}

// ItemCount returns the summed quantity across all lines.
func (s *Store) ItemCount() int {
	return s.Totals().ItemCount
}

// Subtotal returns the discounted-price-aware sum over all lines.
func (s *Store) Subtotal() int64 {
	return s.Totals().Subtotal
}

// Shipping returns the flat shipping fee for the current cart.
func (s *Store) Shipping() int64 {
	return s.Totals().Shipping
}

// Total returns subtotal plus shipping.
func (s *Store) Total() int64 {
	return s.Totals().Total
}

func (s *Store) matches(line *domain.Line, productID, color string) bool {
	if line.Product.ID != productID {
		return false
	}
	if s.opts.VariantScopedRemoval {
		return line.Color == color
	}
	return true
}

func (s *Store) itemsLocked() []domain.Line {
	items := make([]domain.Line, len(s.lines))
	copy(items, s.lines)
	return items
}

// persistLocked snapshots the full line sequence. Persistence failures are
// logged and never fail the mutation.
func (s *Store) persistLocked(ctx context.Context) {
	data, err := EncodeLines(s.lines)
	if err != nil {
		logger.Error(ctx).Err(err).Str("cart_id", s.id).Msg("Failed to encode cart snapshot")
		return
	}
	if err := s.snapshots.Save(ctx, s.id, data); err != nil {
		logger.Error(ctx).Err(err).Str("cart_id", s.id).Msg("Failed to persist cart snapshot")
	}
}

func (s *Store) notify(ctx context.Context, n domain.Notification) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, n)
	}
}

// EncodeLines serializes a line sequence for persistence. An empty cart
// encodes as an empty JSON array so restore round-trips exactly.
func EncodeLines(lines []domain.Line) ([]byte, error) {
	if lines == nil {
		lines = []domain.Line{}
	}
	return json.Marshal(lines)
}

// DecodeLines deserializes a persisted line sequence.
func DecodeLines(data []byte) ([]domain.Line, error) {
	var lines []domain.Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}
	return lines, nil
}
