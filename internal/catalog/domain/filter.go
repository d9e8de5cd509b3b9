package domain

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of a product listing.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// ParseSortKey maps a raw sort parameter onto a SortKey, defaulting to
// featured ordering for unknown or empty input.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return SortKey(raw)
	default:
		return SortFeatured
	}
}

// FilterCriteria narrows a product listing. Empty Categories or Brands
// leave that dimension unrestricted; a zero PriceMax means no upper bound.
// All conditions are AND-combined.
type FilterCriteria struct {
	Categories  []string
	Brands      []string
	PriceMin    int64
	PriceMax    int64
	InStockOnly bool
}

// Matches reports whether a product satisfies every criterion. The price
// range always applies to the list price, never the discounted price.
func (c FilterCriteria) Matches(p *Product) bool {
	if len(c.Categories) > 0 && !contains(c.Categories, p.Category) {
		return false
	}
	if len(c.Brands) > 0 && !contains(c.Brands, p.Brand) {
		return false
	}
	if p.Price < c.PriceMin {
		return false
	}
	if c.PriceMax > 0 && p.Price > c.PriceMax {
		return false
	}
	if c.InStockOnly && !p.InStock {
		return false
	}
	return true
}

// ApplyFilters returns the products matching the criteria in the order
// given by the sort key. The input slice is never mutated; ties keep the
// catalog's relative order. An inverted price range yields no products.
func ApplyFilters(products []Product, criteria FilterCriteria, key SortKey) []Product {
	result := make([]Product, 0, len(products))
	for i := range products {
		if criteria.Matches(&products[i]) {
			result = append(result, products[i])
		}
	}
	sortProducts(result, key)
	return result
}

func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNameAsc:
		c := newNameCollator()
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortNameDesc:
		c := newNameCollator()
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) > 0
		})
	default:
		// Featured products first, otherwise catalog order.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	}
}

func newNameCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
