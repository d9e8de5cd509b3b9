package repository

import (
	"github.com/velocita/storefront/internal/catalog/domain"
)

// MemoryCatalogRepository serves a fixed product list from memory. It backs
// the standalone catalog mode and tests.
type MemoryCatalogRepository struct {
	products []domain.Product
	byID     map[string]int
}

// NewMemoryCatalogRepository creates a repository over the given products,
// preserving their order.
func NewMemoryCatalogRepository(products []domain.Product) *MemoryCatalogRepository {
	byID := make(map[string]int, len(products))
	for i := range products {
		byID[products[i].ID] = i
	}
	return &MemoryCatalogRepository{products: products, byID: byID}
}

// NewSeededCatalogRepository creates a repository over the built-in catalog.
func NewSeededCatalogRepository() *MemoryCatalogRepository {
	return NewMemoryCatalogRepository(SeedProducts())
}

// FindAll returns a copy of the catalog in insertion order.
func (r *MemoryCatalogRepository) FindAll() ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// FindByID returns the product with the given id.
func (r *MemoryCatalogRepository) FindByID(id string) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := r.products[i]
	return &p, nil
}

// Meta returns the filter dimensions of the catalog.
func (r *MemoryCatalogRepository) Meta() (*domain.CatalogMeta, error) {
	return catalogMeta(r.products), nil
}

// Count returns the number of products.
func (r *MemoryCatalogRepository) Count() (int64, error) {
	return int64(len(r.products)), nil
}

func catalogMeta(products []domain.Product) *domain.CatalogMeta {
	meta := &domain.CatalogMeta{}
	seenCategory := map[string]bool{}
	seenBrand := map[string]bool{}

	for i := range products {
		p := &products[i]
		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			meta.Categories = append(meta.Categories, p.Category)
		}
		if !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			meta.Brands = append(meta.Brands, p.Brand)
		}
		if meta.MinPrice == 0 || p.Price < meta.MinPrice {
			meta.MinPrice = p.Price
		}
		if p.Price > meta.MaxPrice {
			meta.MaxPrice = p.Price
		}
	}
	return meta
}
