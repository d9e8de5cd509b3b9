package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discounted(v int64) *int64 { return &v }

func testCatalog() []Product {
	return []Product{
		{
			ID: "a", Name: "Alpha", Brand: "Ducati", Category: "Sport",
			Price: 100, Colors: []string{"Red"}, InStock: true,
		},
		{
			ID: "b", Name: "Bravo", Brand: "Honda", Category: "Cruiser",
			Price: 200, DiscountedPrice: discounted(150),
			Colors: []string{"Black"}, InStock: false,
		},
	}
}

func TestApplyFilters_Predicate(t *testing.T) {
	catalog := testCatalog()

	t.Run("category and stock filter", func(t *testing.T) {
		got := ApplyFilters(catalog, FilterCriteria{
			Categories:  []string{"Sport"},
			InStockOnly: true,
		}, SortPriceAsc)

		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0].ID)
	})

	t.Run("empty criteria match everything", func(t *testing.T) {
		got := ApplyFilters(catalog, FilterCriteria{}, SortPriceDesc)

		require.Len(t, got, 2)
		// Sorted by list price, the discounted price is ignored.
		assert.Equal(t, "b", got[0].ID)
		assert.Equal(t, "a", got[1].ID)
	})

	t.Run("brand filter", func(t *testing.T) {
		got := ApplyFilters(catalog, FilterCriteria{Brands: []string{"Honda"}}, SortFeatured)

		require.Len(t, got, 1)
		assert.Equal(t, "b", got[0].ID)
	})

	t.Run("price range uses list price", func(t *testing.T) {
		// B's discounted price of 150 would match; its list price of 200
		// must not.
		got := ApplyFilters(catalog, FilterCriteria{PriceMin: 120, PriceMax: 180}, SortFeatured)
		assert.Empty(t, got)
	})

	t.Run("inverted price range matches nothing", func(t *testing.T) {
		got := ApplyFilters(catalog, FilterCriteria{PriceMin: 300, PriceMax: 200}, SortFeatured)
		assert.Empty(t, got)
	})

	t.Run("empty catalog", func(t *testing.T) {
		got := ApplyFilters(nil, FilterCriteria{}, SortPriceAsc)
		assert.Empty(t, got)
	})
}

func TestApplyFilters_Sorting(t *testing.T) {
	catalog := []Product{
		{ID: "zx10r", Name: "Ninja ZX-10R", Price: 1539000, InStock: true},
		{ID: "panigale", Name: "Panigale V4", Price: 2650000, Featured: true, InStock: true},
		{ID: "hayabusa", Name: "Hayabusa", Price: 1640000, Featured: true, InStock: true},
		{ID: "fatboy", Name: "Fat Boy", Price: 2085000, InStock: true},
	}

	t.Run("featured first, ties keep catalog order", func(t *testing.T) {
		got := ApplyFilters(catalog, FilterCriteria{}, SortFeatured)
		assert.Equal(t, []string{"panigale", "hayabusa", "zx10r", "fatboy"}, ids(got))
	})

	t.Run("price ascending", func(t *testing.T) {
		got := ApplyFilters(catalog, FilterCriteria{}, SortPriceAsc)
		assert.Equal(t, []string{"zx10r", "hayabusa", "fatboy", "panigale"}, ids(got))
	})

	t.Run("price descending", func(t *testing.T) {
		got := ApplyFilters(catalog, FilterCriteria{}, SortPriceDesc)
		assert.Equal(t, []string{"panigale", "fatboy", "hayabusa", "zx10r"}, ids(got))
	})

	t.Run("name ascending", func(t *testing.T) {
		got := ApplyFilters(catalog, FilterCriteria{}, SortNameAsc)
		assert.Equal(t, []string{"fatboy", "hayabusa", "zx10r", "panigale"}, ids(got))
	})

	t.Run("name descending", func(t *testing.T) {
		got := ApplyFilters(catalog, FilterCriteria{}, SortNameDesc)
		assert.Equal(t, []string{"panigale", "zx10r", "hayabusa", "fatboy"}, ids(got))
	})

	t.Run("stable on equal prices", func(t *testing.T) {
		same := []Product{
			{ID: "first", Name: "First", Price: 100},
			{ID: "second", Name: "Second", Price: 100},
			{ID: "third", Name: "Third", Price: 100},
		}
		got := ApplyFilters(same, FilterCriteria{}, SortPriceAsc)
		assert.Equal(t, []string{"first", "second", "third"}, ids(got))
	})
}

func TestApplyFilters_DoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	original := ids(catalog)

	got := ApplyFilters(catalog, FilterCriteria{}, SortPriceDesc)
	require.NotEmpty(t, got)

	assert.Equal(t, original, ids(catalog))

	// Mutating the result must not leak into the catalog.
	got[0].Name = "mutated"
	assert.NotEqual(t, "mutated", catalog[0].Name)
	assert.NotEqual(t, "mutated", catalog[1].Name)
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortFeatured, ParseSortKey(""))
	assert.Equal(t, SortFeatured, ParseSortKey("bogus"))
	assert.Equal(t, SortPriceAsc, ParseSortKey("price-asc"))
	assert.Equal(t, SortNameDesc, ParseSortKey("name-desc"))
}
