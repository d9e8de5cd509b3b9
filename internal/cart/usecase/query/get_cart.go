package query

import (
	"context"

	"github.com/velocita/storefront/internal/cart"
	"github.com/velocita/storefront/internal/cart/domain"
)

// GetCartQuery represents the query for the current cart state
type GetCartQuery struct{}

// CartView is the cart state handed to the presentation layer: the line
// sequence plus totals derived at read time.
type CartView struct {
	Items  []domain.Line `json:"items"`
	Totals domain.Totals `json:"totals"`
}

// GetCartHandler handles cart state queries
type GetCartHandler struct{}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler() *GetCartHandler {
	return &GetCartHandler{}
}

// Handle executes the get cart query against the store bound to the context
func (h *GetCartHandler) Handle(ctx context.Context, _ GetCartQuery) (*CartView, error) {
	store, err := cart.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	return &CartView{
		Items:  store.Items(),
		Totals: store.Totals(),
	}, nil
}
