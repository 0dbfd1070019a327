package service

import (
	"context"

	"shopmate/internal/domain/entity"
)

// CheckoutItem is the minimal line the payment provider needs.
type CheckoutItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PaymentGateway covers the external payment handoff. The provider itself is
// behind the backend; the client only opens sessions and polls status.
type PaymentGateway interface {
	// CreateCheckoutSession opens a hosted payment session for the cart and
	// returns the URL to hand to the shopper plus the id to poll with.
	CreateCheckoutSession(ctx context.Context, items []CheckoutItem, hostURL string) (*entity.CheckoutSession, error)

	// GetPaymentStatus queries the settlement state of a session.
	GetPaymentStatus(ctx context.Context, sessionID string) (*entity.PaymentStatus, error)
}
