package domain

import "errors"

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Product represents a catalog entry. The catalog is read-only for the
// lifetime of a session; prices are whole currency units.
type Product struct {
	ID              string            `json:"id" gorm:"primaryKey"`
	Name            string            `json:"name" gorm:"not null"`
	Brand           string            `json:"brand" gorm:"index"`
	Category        string            `json:"category" gorm:"index"`
	Price           int64             `json:"price" gorm:"not null"`
	DiscountedPrice *int64            `json:"discountedPrice,omitempty"`
	Description     string            `json:"description"`
	Specifications  map[string]string `json:"specifications" gorm:"serializer:json"`
	Colors          []string          `json:"colors" gorm:"serializer:json"`
	Images          []string          `json:"images" gorm:"serializer:json"`
	Featured        bool              `json:"featured"`
	New             bool              `json:"new"`
	InStock         bool              `json:"inStock"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// EffectivePrice returns the price a buyer pays for one unit.
func (p *Product) EffectivePrice() int64 {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}

// HasColor reports whether the product is offered in the given color.
func (p *Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// CatalogMeta describes the catalog dimensions the listing UI filters on.
type CatalogMeta struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	MinPrice   int64    `json:"minPrice"`
	MaxPrice   int64    `json:"maxPrice"`
}

// CatalogRepository defines read-only access to the product catalog
type CatalogRepository interface {
	FindAll() ([]Product, error)
	FindByID(id string) (*Product, error)
	Meta() (*CatalogMeta, error)
	Count() (int64, error)
}
