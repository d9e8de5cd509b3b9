package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/velocita/storefront/internal/cart"
	cartdomain "github.com/velocita/storefront/internal/cart/domain"
	"github.com/velocita/storefront/internal/cart/usecase/command"
	"github.com/velocita/storefront/internal/cart/usecase/query"
	catalogdomain "github.com/velocita/storefront/internal/catalog/domain"
	"github.com/velocita/storefront/pkg/logger"
)

// CartHandler handles HTTP requests for the shopping cart using CQRS pattern
type CartHandler struct {
	provider *cart.Provider

	// Command handlers
	addHandler    *command.AddItemHandler
	removeHandler *command.RemoveItemHandler
	updateHandler *command.UpdateQuantityHandler
	clearHandler  *command.ClearCartHandler

	// Query handlers
	getCartHandler *query.GetCartHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	cartItems      prometheus.Gauge
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	provider *cart.Provider,
	addHandler *command.AddItemHandler,
	removeHandler *command.RemoveItemHandler,
	updateHandler *command.UpdateQuantityHandler,
	clearHandler *command.ClearCartHandler,
	getCartHandler *query.GetCartHandler,
) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_requests_total",
			Help: "Total number of requests to the cart endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_cart_request_duration_seconds",
			Help:    "Duration of cart requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	cartItems := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_cart_items",
			Help: "Item count of the most recently mutated cart",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(cartItems)

	return &CartHandler{
		provider:       provider,
		addHandler:     addHandler,
		removeHandler:  removeHandler,
		updateHandler:  updateHandler,
		clearHandler:   clearHandler,
		getCartHandler: getCartHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		cartItems:      cartItems,
	}
}

// Response is the JSON envelope shared by all storefront endpoints
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers the cart routes. Every route runs behind the
// session middleware that binds the per-session store to the context.
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	bind := h.SessionMiddleware
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", bind(h.GetCart))).Methods("GET")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", bind(h.ClearCart))).Methods("DELETE")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", bind(h.AddItem))).Methods("POST")
	router.HandleFunc("/api/cart/items/{productId}", h.metricsMiddleware("/api/cart/items/{productId}", bind(h.UpdateQuantity))).Methods("PATCH")
	router.HandleFunc("/api/cart/items/{productId}", h.metricsMiddleware("/api/cart/items/{productId}", bind(h.RemoveItem))).Methods("DELETE")
}

// SessionCookieName carries the cart session id.
const SessionCookieName = "velocita_cart_id"

// SessionMiddleware resolves the cart session cookie, creating a new
// session when absent, and binds the restored store to the request context.
func (h *CartHandler) SessionMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID := ""
		if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
			cartID = cookie.Value
		}
		if cartID == "" {
			cartID = cart.NewSessionID()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    cartID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		store := h.provider.Get(r.Context(), cartID)
		next.ServeHTTP(w, r.WithContext(cart.NewContext(r.Context(), store)))
	}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.getCartHandler.Handle(r.Context(), query.GetCartQuery{})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
		Color     string `json:"color"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.AddItemCommand{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Color:     req.Color,
	}

	items, err := h.addHandler.Handle(r.Context(), cmd)
	if err != nil {
		if errors.Is(err, catalogdomain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Product not found",
			})
			return
		}
		if errors.Is(err, cartdomain.ErrStoreNotBound) {
			h.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateCartMetric(r)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item added to cart",
		Data:    items,
	})
}

// UpdateQuantity handles PATCH /api/cart/items/{productId}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Quantity int    `json:"quantity"`
		Color    string `json:"color"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateQuantityCommand{
		ProductID: vars["productId"],
		Color:     req.Color,
		Quantity:  req.Quantity,
	}

	items, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.updateCartMetric(r)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart updated",
		Data:    items,
	})
}

// RemoveItem handles DELETE /api/cart/items/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cmd := command.RemoveItemCommand{
		ProductID: vars["productId"],
		Color:     r.URL.Query().Get("color"),
	}

	items, err := h.removeHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.updateCartMetric(r)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item removed",
		Data:    items,
	})
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.clearHandler.Handle(r.Context(), command.ClearCartCommand{}); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.updateCartMetric(r)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
	})
}

// respondError maps command errors onto status codes. A store that is not
// bound to the context is a wiring bug and surfaces as a 500.
func (h *CartHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, cartdomain.ErrStoreNotBound) {
		logger.Error(r.Context()).Err(err).Msg("Cart store not bound to request context")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Cart unavailable",
		})
		return
	}

	respondJSON(w, http.StatusBadRequest, Response{
		Success: false,
		Error:   err.Error(),
	})
}

// updateCartMetric publishes the mutated cart's item count.
func (h *CartHandler) updateCartMetric(r *http.Request) {
	if store, err := cart.FromContext(r.Context()); err == nil {
		h.cartItems.Set(float64(store.ItemCount()))
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
