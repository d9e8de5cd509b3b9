package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velocita/storefront/internal/catalog/domain"
	"github.com/velocita/storefront/internal/catalog/repository"
	"github.com/velocita/storefront/internal/catalog/usecase/query"
)

var (
	buildOnce  sync.Once
	testRouter *mux.Router
)

// router builds the handler once per process; the prometheus collectors it
// registers are global.
func router() *mux.Router {
	buildOnce.Do(func() {
		repo := repository.NewMemoryCatalogRepository([]domain.Product{
			{ID: "alpha", Name: "Alpha", Brand: "Acme", Category: "Sport", Price: 900, InStock: true},
			{ID: "bravo", Name: "Bravo", Brand: "Acme", Category: "Cruiser", Price: 500, Featured: true, InStock: true},
			{ID: "charlie", Name: "Charlie", Brand: "Bolt", Category: "Sport", Price: 700, InStock: false},
		})

		handler := NewCatalogHandler(
			query.NewListProductsHandler(repo),
			query.NewGetProductHandler(repo),
			query.NewGetCatalogMetaHandler(repo),
		)

		testRouter = mux.NewRouter()
		handler.RegisterRoutes(testRouter)
	})
	return testRouter
}

func get(t *testing.T, target string) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router().ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func listing(t *testing.T, target string) (ids []string, sortKey string) {
	t.Helper()

	rec, resp := get(t, target)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var data struct {
		Products []domain.Product `json:"products"`
		Total    int              `json:"total"`
		Sort     string           `json:"sort"`
	}
	require.NoError(t, json.Unmarshal(raw, &data))
	require.Len(t, data.Products, data.Total)

	for _, p := range data.Products {
		ids = append(ids, p.ID)
	}
	return ids, data.Sort
}

func TestCatalogHandler(t *testing.T) {
	t.Run("unfiltered listing is featured first", func(t *testing.T) {
		ids, sortKey := listing(t, "/api/products")
		assert.Equal(t, []string{"bravo", "alpha", "charlie"}, ids)
		assert.Equal(t, "featured", sortKey)
	})

	t.Run("category and stock filters combine", func(t *testing.T) {
		ids, _ := listing(t, "/api/products?category=Sport&inStock=true")
		assert.Equal(t, []string{"alpha"}, ids)
	})

	t.Run("price range", func(t *testing.T) {
		ids, _ := listing(t, "/api/products?price_min=600&price_max=800")
		assert.Equal(t, []string{"charlie"}, ids)
	})

	t.Run("price sort", func(t *testing.T) {
		ids, sortKey := listing(t, "/api/products?sort=price-asc")
		assert.Equal(t, []string{"bravo", "charlie", "alpha"}, ids)
		assert.Equal(t, "price-asc", sortKey)
	})

	t.Run("unknown sort falls back to featured", func(t *testing.T) {
		ids, sortKey := listing(t, "/api/products?sort=bogus")
		assert.Equal(t, []string{"bravo", "alpha", "charlie"}, ids)
		assert.Equal(t, "featured", sortKey)
	})

	t.Run("get product", func(t *testing.T) {
		rec, resp := get(t, "/api/products/alpha")
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, resp.Success)

		raw, err := json.Marshal(resp.Data)
		require.NoError(t, err)

		var p domain.Product
		require.NoError(t, json.Unmarshal(raw, &p))
		assert.Equal(t, "Alpha", p.Name)
	})

	t.Run("unknown product is a 404", func(t *testing.T) {
		rec, resp := get(t, "/api/products/zulu")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, resp.Success)
	})

	t.Run("catalog meta", func(t *testing.T) {
		rec, resp := get(t, "/api/products/meta")
		require.Equal(t, http.StatusOK, rec.Code)

		raw, err := json.Marshal(resp.Data)
		require.NoError(t, err)

		var meta domain.CatalogMeta
		require.NoError(t, json.Unmarshal(raw, &meta))
		assert.ElementsMatch(t, []string{"Sport", "Cruiser"}, meta.Categories)
		assert.ElementsMatch(t, []string{"Acme", "Bolt"}, meta.Brands)
	})
}
