package command

import (
	"context"

	"github.com/velocita/storefront/internal/cart"
)

// ClearCartCommand represents the command to empty the cart
type ClearCartCommand struct{}

// ClearCartHandler handles clear cart commands
type ClearCartHandler struct{}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler() *ClearCartHandler {
	return &ClearCartHandler{}
}

// Handle executes the clear cart command
func (h *ClearCartHandler) Handle(ctx context.Context, _ ClearCartCommand) error {
	store, err := cart.FromContext(ctx)
	if err != nil {
		return err
	}

	store.Clear(ctx)
	return nil
}
