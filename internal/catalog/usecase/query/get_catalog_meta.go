package query

import (
	"fmt"

	"github.com/velocita/storefront/internal/catalog/domain"
)

// GetCatalogMetaQuery represents the query for catalog filter dimensions
type GetCatalogMetaQuery struct{}

// GetCatalogMetaHandler handles catalog metadata queries
type GetCatalogMetaHandler struct {
	repo domain.CatalogRepository
}

// NewGetCatalogMetaHandler creates a new catalog metadata handler
func NewGetCatalogMetaHandler(repo domain.CatalogRepository) *GetCatalogMetaHandler {
	return &GetCatalogMetaHandler{repo: repo}
}

// Handle executes the catalog metadata query
func (h *GetCatalogMetaHandler) Handle(GetCatalogMetaQuery) (*domain.CatalogMeta, error) {
	meta, err := h.repo.Meta()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog metadata: %w", err)
	}
	return meta, nil
}
