package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velocita/storefront/internal/cart"
	cartrepository "github.com/velocita/storefront/internal/cart/repository"
	"github.com/velocita/storefront/internal/cart/usecase/command"
	"github.com/velocita/storefront/internal/cart/usecase/query"
	catalogdomain "github.com/velocita/storefront/internal/catalog/domain"
	catalogrepository "github.com/velocita/storefront/internal/catalog/repository"
)

var (
	buildOnce  sync.Once
	testRouter *mux.Router
)

// router builds the handler once per process; the prometheus collectors it
// registers are global.
func router() *mux.Router {
	buildOnce.Do(func() {
		catalogRepo := catalogrepository.NewMemoryCatalogRepository([]catalogdomain.Product{
			{
				ID: "bike", Name: "Bike", Category: "Sport", Price: 1000,
				Colors: []string{"Red", "Black"}, InStock: true,
			},
		})
		provider := cart.NewProvider(cartrepository.NewMemorySnapshotStore(), nil, cart.Options{ShippingFee: 500})

		handler := NewCartHandler(
			provider,
			command.NewAddItemHandler(catalogRepo),
			command.NewRemoveItemHandler(),
			command.NewUpdateQuantityHandler(),
			command.NewClearCartHandler(),
			query.NewGetCartHandler(),
		)

		testRouter = mux.NewRouter()
		handler.RegisterRoutes(testRouter)
	})
	return testRouter
}

// do sends a request, carrying the session cookie between calls.
func do(t *testing.T, cookie *http.Cookie, method, target, body string) (*httptest.ResponseRecorder, *http.Cookie) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	router().ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "session cookie missing")
	return rec, cookie
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestCartHandler(t *testing.T) {
	t.Run("session lifecycle", func(t *testing.T) {
		rec, cookie := do(t, nil, http.MethodGet, "/api/cart", "")
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode(t, rec)
		assert.True(t, resp.Success)

		// Adding the same variant twice merges.
		rec, cookie = do(t, cookie, http.MethodPost, "/api/cart/items",
			`{"product_id":"bike","quantity":2,"color":"Red"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec, cookie = do(t, cookie, http.MethodPost, "/api/cart/items",
			`{"product_id":"bike","quantity":3,"color":"Red"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec, cookie = do(t, cookie, http.MethodGet, "/api/cart", "")
		var view struct {
			Items []struct {
				Quantity int    `json:"quantity"`
				Color    string `json:"color"`
			} `json:"items"`
			Totals struct {
				ItemCount int   `json:"itemCount"`
				Subtotal  int64 `json:"subtotal"`
				Shipping  int64 `json:"shipping"`
				Total     int64 `json:"total"`
			} `json:"totals"`
		}
		resp = decode(t, rec)
		raw, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &view))

		require.Len(t, view.Items, 1)
		assert.Equal(t, 5, view.Items[0].Quantity)
		assert.Equal(t, 5, view.Totals.ItemCount)
		assert.Equal(t, int64(5000), view.Totals.Subtotal)
		assert.Equal(t, int64(500), view.Totals.Shipping)
		assert.Equal(t, int64(5500), view.Totals.Total)

		// Setting quantity to zero removes the line.
		rec, cookie = do(t, cookie, http.MethodPatch, "/api/cart/items/bike",
			`{"quantity":0}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec, _ = do(t, cookie, http.MethodGet, "/api/cart", "")
		resp = decode(t, rec)
		raw, err = json.Marshal(resp.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &view))
		assert.Empty(t, view.Items)
		assert.Zero(t, view.Totals.Total)
	})

	t.Run("unknown product is a 404", func(t *testing.T) {
		rec, _ := do(t, nil, http.MethodPost, "/api/cart/items",
			`{"product_id":"ghost","quantity":1}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad color is a 400", func(t *testing.T) {
		rec, _ := do(t, nil, http.MethodPost, "/api/cart/items",
			`{"product_id":"bike","quantity":1,"color":"Chartreuse"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		rec, _ := do(t, nil, http.MethodPost, "/api/cart/items", `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("removing an absent product succeeds", func(t *testing.T) {
		rec, _ := do(t, nil, http.MethodDelete, "/api/cart/items/nonexistent", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("clear cart", func(t *testing.T) {
		_, cookie := do(t, nil, http.MethodPost, "/api/cart/items",
			`{"product_id":"bike","quantity":1,"color":"Black"}`)

		rec, cookie := do(t, cookie, http.MethodDelete, "/api/cart", "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec, _ = do(t, cookie, http.MethodGet, "/api/cart", "")
		resp := decode(t, rec)
		assert.True(t, resp.Success)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		_, first := do(t, nil, http.MethodPost, "/api/cart/items",
			`{"product_id":"bike","quantity":1,"color":"Red"}`)

		rec, _ := do(t, nil, http.MethodGet, "/api/cart", "")
		resp := decode(t, rec)
		raw, err := json.Marshal(resp.Data)
		require.NoError(t, err)

		var view struct {
			Items []json.RawMessage `json:"items"`
		}
		require.NoError(t, json.Unmarshal(raw, &view))
		assert.Empty(t, view.Items, "a fresh session must start empty")

		rec, _ = do(t, first, http.MethodGet, "/api/cart", "")
		resp = decode(t, rec)
		raw, err = json.Marshal(resp.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &view))
		assert.Len(t, view.Items, 1)
	})
}
