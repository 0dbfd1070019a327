package api

import (
	"context"

	"shopmate/internal/domain/entity"
	"shopmate/internal/domain/service"
)

type paymentGateway struct {
	client *Client
}

// NewPaymentGateway is the constructor for the payment gateway.
func NewPaymentGateway(client *Client) service.PaymentGateway {
	return &paymentGateway{client: client}
}

type checkoutRequest struct {
	CartItems []service.CheckoutItem `json:"cart_items"`
	HostURL   string                 `json:"host_url"`
}

// CreateCheckoutSession opens a hosted payment session for the cart.
func (g *paymentGateway) CreateCheckoutSession(ctx context.Context, items []service.CheckoutItem, hostURL string) (*entity.CheckoutSession, error) {
	var session entity.CheckoutSession
	if err := g.client.post(ctx, "/api/payments/checkout", checkoutRequest{CartItems: items, HostURL: hostURL}, &session, true); err != nil {
		return nil, err
	}

	return &session, nil
}

// GetPaymentStatus queries the settlement state of a session.
func (g *paymentGateway) GetPaymentStatus(ctx context.Context, sessionID string) (*entity.PaymentStatus, error) {
	var status entity.PaymentStatus
	if err := g.client.get(ctx, "/api/payments/status/"+sessionID, nil, &status, true); err != nil {
		return nil, err
	}

	return &status, nil
}
