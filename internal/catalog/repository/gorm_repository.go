package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/velocita/storefront/internal/catalog/domain"
	"github.com/velocita/storefront/pkg/logger"
)

// GormCatalogRepository implements CatalogRepository backed by PostgreSQL
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// AutoMigrate creates the products table
func (r *GormCatalogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

// Seed inserts the built-in catalog when the table is empty. The catalog is
// read-only afterwards.
func (r *GormCatalogRepository) Seed() error {
	count, err := r.Count()
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	products := SeedProducts()
	if err := r.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	logger.Logger.Info().Int("products", len(products)).Msg("Catalog seeded")
	return nil
}

// FindAll returns the full catalog in insertion order
func (r *GormCatalogRepository) FindAll() ([]domain.Product, error) {
	var products []domain.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return products, nil
}

// FindByID returns the product with the given id
func (r *GormCatalogRepository) FindByID(id string) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

// Meta returns the filter dimensions of the catalog
func (r *GormCatalogRepository) Meta() (*domain.CatalogMeta, error) {
	products, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	return catalogMeta(products), nil
}

// Count returns the number of products
func (r *GormCatalogRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}
