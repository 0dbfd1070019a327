// Package entity contains the core business objects of the project.
package entity

import "time"

// OrderStatus is the backend-owned lifecycle state of an order. The client
// only ever requests a cancel; every other transition is server-side.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Cancellable reports whether a cancel request still makes sense for this
// status. The backend has the final say; this only gates the client UI.
func (s OrderStatus) Cancellable() bool {
	switch s {
	case OrderPending, OrderConfirmed:
		return true
	default:
		return false
	}
}

// OrderLine captures one product at the moment of purchase.
type OrderLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // Unit price at purchase time.
	Total     float64 `json:"total"` // Price * Quantity, precomputed for the backend.
}

// Order is a placed order as the backend reports it.
type Order struct {
	ID              string      `json:"id"`
	Products        []OrderLine `json:"products"`
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `json:"status"`
	DeliveryAddress Address     `json:"delivery_address"`
	CreatedAt       time.Time   `json:"created_at"`
}
