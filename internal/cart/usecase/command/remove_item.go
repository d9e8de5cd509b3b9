package command

import (
	"context"
	"fmt"

	"github.com/velocita/storefront/internal/cart"
	"github.com/velocita/storefront/internal/cart/domain"
)

// RemoveItemCommand represents the command to remove a product from the
// cart. Color only narrows the match when the store is variant-scoped.
type RemoveItemCommand struct {
	ProductID string
	Color     string
}

// RemoveItemHandler handles remove item commands
type RemoveItemHandler struct{}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler() *RemoveItemHandler {
	return &RemoveItemHandler{}
}

// Handle executes the remove item command. Removing an id with no matching
// line is a no-op that still notifies.
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) ([]domain.Line, error) {
	store, err := cart.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if cmd.ProductID == "" {
		return nil, fmt.Errorf("product id is required")
	}

	return store.RemoveItem(ctx, cmd.ProductID, cmd.Color), nil
}
