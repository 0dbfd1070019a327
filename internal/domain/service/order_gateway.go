package service

import (
	"context"

	"shopmate/internal/domain/entity"
)

// OrderSubmission is the payload for placing an order: the cart lines frozen
// at submit time plus the computed grand total. Stock and price are not
// re-validated client-side; the backend is the authority and may reject.
type OrderSubmission struct {
	Products        []entity.OrderLine `json:"products"`
	TotalAmount     float64            `json:"total_amount"`
	DeliveryAddress entity.Address     `json:"delivery_address"`
	PaymentMethod   string             `json:"payment_method"` // "cod" or "online".
}

// OrderGateway covers the shopper's order surface.
type OrderGateway interface {
	// PlaceOrder submits an order once and returns the created order.
	PlaceOrder(ctx context.Context, submission OrderSubmission) (*entity.Order, error)

	// ListOrders returns the caller's own orders.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// CancelOrder requests cancellation while the backend still allows it.
	CancelOrder(ctx context.Context, orderID string) (*entity.Order, error)
}
