package kafka

import "time"

// OrderLine is one cart line carried on an order event
type OrderLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// OrderPlacedEvent represents a completed simulated checkout
type OrderPlacedEvent struct {
	EventID       string      `json:"event_id"`
	EventType     string      `json:"event_type"`
	OrderID       string      `json:"order_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Lines         []OrderLine `json:"lines"`
	ItemCount     int         `json:"item_count"`
	Subtotal      int64       `json:"subtotal"`
	Shipping      int64       `json:"shipping"`
	Total         int64       `json:"total"`
	Currency      string      `json:"currency"`
	Timestamp     time.Time   `json:"timestamp"`
}

// CartNotificationEvent mirrors a storefront toast onto the event bus
type CartNotificationEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	CartID      string    `json:"cart_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced      = "order.placed"
	EventTypeCartNotification = "cart.notification"
)

// Kafka topics
const (
	TopicOrderPlaced       = "order-placed"
	TopicCartNotifications = "cart-notifications"
)
