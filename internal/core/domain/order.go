package domain

import "time"

// OrderStatus represents the lifecycle state of an order as surfaced to the
// dashboards. No transition machine is enforced here; orders are read-only in
// this service.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Order is a customer purchase record. Reseller orders carry the purchasing
// customer's reseller role so the back-office can queue them for approval.
type Order struct {
	ID            string      `json:"id" bson:"_id,omitempty"`
	OrderNumber   string      `json:"order_number" bson:"order_number"`
	CustomerID    string      `json:"customer_id" bson:"customer_id"`
	CustomerEmail string      `json:"customer_email" bson:"customer_email"`
	CustomerRole  Role        `json:"customer_role" bson:"customer_role"`
	Status        OrderStatus `json:"status" bson:"status"`
	ItemCount     int         `json:"item_count" bson:"item_count"`
	Total         float64     `json:"total" bson:"total"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
}
