package query

import (
	"github.com/velocita/storefront/internal/catalog/domain"
)

// GetProductQuery represents the query to get a single product
type GetProductQuery struct {
	ID string
}

// GetProductHandler handles single product queries
type GetProductHandler struct {
	repo domain.CatalogRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.CatalogRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(q GetProductQuery) (*domain.Product, error) {
	return h.repo.FindByID(q.ID)
}
