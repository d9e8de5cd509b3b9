package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/velocita/storefront/internal/cart"
	cartdomain "github.com/velocita/storefront/internal/cart/domain"
	"github.com/velocita/storefront/internal/checkout"
	"github.com/velocita/storefront/pkg/logger"
)

// CheckoutHandler handles HTTP requests for the simulated checkout
type CheckoutHandler struct {
	simulator *checkout.Simulator

	requestCounter *prometheus.CounterVec
	ordersPlaced   prometheus.Counter
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(simulator *checkout.Simulator) *CheckoutHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_checkout_requests_total",
			Help: "Total number of requests to the checkout endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	ordersPlaced := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_checkout_orders_total",
			Help: "Total number of simulated checkouts started",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(ordersPlaced)

	return &CheckoutHandler{
		simulator:      simulator,
		requestCounter: requestCounter,
		ordersPlaced:   ordersPlaced,
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
func (h *CheckoutHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// RegisterRoutes registers the checkout routes. StartCheckout runs behind
// the cart session middleware so the live store is bound to the context.
func (h *CheckoutHandler) RegisterRoutes(router *mux.Router, bind func(http.HandlerFunc) http.HandlerFunc) {
	router.HandleFunc("/api/checkout", h.metricsMiddleware("/api/checkout", bind(h.StartCheckout))).Methods("POST")
	router.HandleFunc("/api/checkout/{orderId}", h.metricsMiddleware("/api/checkout/{orderId}", h.GetOrder)).Methods("GET")
}

// StartCheckout handles POST /api/checkout. The response carries the order
// in the processing state; completion is asynchronous and the cart stays
// mutable during the delay.
func (h *CheckoutHandler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	store, err := cart.FromContext(r.Context())
	if err != nil {
		if errors.Is(err, cartdomain.ErrStoreNotBound) {
			logger.Error(r.Context()).Err(err).Msg("Cart store not bound to request context")
		}
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Cart unavailable",
		})
		return
	}

	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Address string `json:"address"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.Name == "" || req.Email == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Name and email are required",
		})
		return
	}

	if store.ItemCount() == 0 {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Cart is empty",
		})
		return
	}

	order := h.simulator.Start(r.Context(), store, checkout.CustomerDetails{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	})
	h.ordersPlaced.Inc()

	respondJSON(w, http.StatusAccepted, Response{
		Success: true,
		Message: fmt.Sprintf("Order %s is processing", order.ID),
		Data:    order,
	})
}

// GetOrder handles GET /api/checkout/{orderId}
func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	order, ok := h.simulator.Order(vars["orderId"])
	if !ok {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Order not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    order,
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
