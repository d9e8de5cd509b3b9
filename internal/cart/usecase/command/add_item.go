package command

import (
	"context"
	"fmt"

	"github.com/velocita/storefront/internal/cart"
	"github.com/velocita/storefront/internal/cart/domain"
	catalog "github.com/velocita/storefront/internal/catalog/domain"
)

// AddItemCommand represents the command to add a product variant to the cart
type AddItemCommand struct {
	ProductID string
	Quantity  int
	Color     string
}

// AddItemHandler handles add item commands
type AddItemHandler struct {
	catalog catalog.CatalogRepository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(repo catalog.CatalogRepository) *AddItemHandler {
	return &AddItemHandler{catalog: repo}
}

// Handle executes the add item command against the store bound to the
// context. The product must exist and offer the requested color; the store
// itself normalizes a non-positive quantity to one.
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) ([]domain.Line, error) {
	store, err := cart.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if cmd.ProductID == "" {
		return nil, fmt.Errorf("product id is required")
	}

	product, err := h.catalog.FindByID(cmd.ProductID)
	if err != nil {
		return nil, err
	}

	color := cmd.Color
	if color == "" && len(product.Colors) > 0 {
		color = product.Colors[0]
	}
	if !product.HasColor(color) {
		return nil, fmt.Errorf("color %q is not available for %s", cmd.Color, product.Name)
	}

	return store.AddItem(ctx, *product, cmd.Quantity, color), nil
}
