package domain

import (
	"context"
	"errors"

	catalog "github.com/velocita/storefront/internal/catalog/domain"
)

// ErrSnapshotNotFound is returned by a SnapshotStore when no snapshot has
// been persisted for the cart.
var ErrSnapshotNotFound = errors.New("cart snapshot not found")

// ErrStoreNotBound is returned when a cart store is used outside a
// provider. It indicates a wiring bug, not a runtime condition.
var ErrStoreNotBound = errors.New("cart store used outside provider")

// DefaultShippingFee is the flat shipping charge for a non-empty cart,
// in whole currency units.
const DefaultShippingFee int64 = 500

// Line is one (product, color) entry in the cart. Lines are unique by
// (Product.ID, Color) and always carry a quantity of at least one. The
// product is embedded as a snapshot so a persisted cart survives catalog
// changes.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Color    string          `json:"color"`
}

// Key returns the line's uniqueness key.
func (l *Line) Key() LineKey {
	return LineKey{ProductID: l.Product.ID, Color: l.Color}
}

// LineTotal returns the line's contribution to the subtotal, honoring the
// discounted price when present.
func (l *Line) LineTotal() int64 {
	return l.Product.EffectivePrice() * int64(l.Quantity)
}

// LineKey identifies a cart line.
type LineKey struct {
	ProductID string
	Color     string
}

// Totals are the derived cart values. They are recomputed from the line
// sequence on every read and never stored.
type Totals struct {
	ItemCount int   `json:"itemCount"`
	Subtotal  int64 `json:"subtotal"`
	Shipping  int64 `json:"shipping"`
	Total     int64 `json:"total"`
}

// ComputeTotals derives the cart totals from a line sequence. Shipping is
// the flat fee whenever at least one item is in the cart.
func ComputeTotals(lines []Line, shippingFee int64) Totals {
	var t Totals
	for i := range lines {
		t.ItemCount += lines[i].Quantity
		t.Subtotal += lines[i].LineTotal()
	}
	if t.ItemCount > 0 {
		t.Shipping = shippingFee
	}
	t.Total = t.Subtotal + t.Shipping
	return t
}

// Notification is a transient user-facing message emitted by cart
// mutations. Delivery is fire-and-forget.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Notifier is the sink cart mutations publish notifications to.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// SnapshotStore persists the serialized cart line sequence under a fixed
// per-cart key. Load returns ErrSnapshotNotFound when nothing has been
// saved yet.
type SnapshotStore interface {
	Load(ctx context.Context, cartID string) ([]byte, error)
	Save(ctx context.Context, cartID string, data []byte) error
	Delete(ctx context.Context, cartID string) error
}
