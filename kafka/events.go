package kafka

import "time"

// OrderPlacedEvent is published when a cart is checked out. Amounts are
// currency minor units, mirroring the cart pricing breakdown.
type OrderPlacedEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	OrderID   string      `json:"order_id"`
	UserID    string      `json:"user_id"`
	Items     []OrderItem `json:"items"`
	Subtotal  int64       `json:"subtotal"`
	Shipping  int64       `json:"shipping"`
	Tax       int64       `json:"tax"`
	Total     int64       `json:"total"`
	Currency  string      `json:"currency"`
	Timestamp time.Time   `json:"timestamp"`
}

// OrderItem is one purchased line item inside an OrderPlacedEvent
type OrderItem struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
)
