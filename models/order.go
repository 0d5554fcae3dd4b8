package models

import "time"

// Order status values. An order starts as placed; the only in-process
// transition is placed -> cancelled. The fulfillment states are written
// by external tooling and are terminal here.
const (
	OrderStatusPlaced    = "placed"
	OrderStatusPreparing = "preparing"
	OrderStatusOnTheWay  = "on-the-way"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID          int         `json:"id"`
	OrderNumber string      `json:"order_number"`
	UserID      int         `json:"user_id"`
	Items       []OrderItem `json:"items"`
	Total       float64     `json:"total"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderItem is a line item embedded in an order. Items have no identity
// outside their order.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
