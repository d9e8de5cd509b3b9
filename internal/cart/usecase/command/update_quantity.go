package command

import (
	"context"
	"fmt"

	"github.com/velocita/storefront/internal/cart"
	"github.com/velocita/storefront/internal/cart/domain"
)

// UpdateQuantityCommand represents the command to set an absolute quantity
// on a cart line.
type UpdateQuantityCommand struct {
	ProductID string
	Color     string
	Quantity  int
}

// UpdateQuantityHandler handles quantity update commands
type UpdateQuantityHandler struct{}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler() *UpdateQuantityHandler {
	return &UpdateQuantityHandler{}
}

// Handle executes the update quantity command. A quantity of zero or less
// removes the line(s) instead.
func (h *UpdateQuantityHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) ([]domain.Line, error) {
	store, err := cart.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if cmd.ProductID == "" {
		return nil, fmt.Errorf("product id is required")
	}

	return store.UpdateQuantity(ctx, cmd.ProductID, cmd.Color, cmd.Quantity), nil
}
