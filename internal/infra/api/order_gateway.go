package api

import (
	"context"

	"shopmate/internal/domain/entity"
	"shopmate/internal/domain/service"
)

type orderGateway struct {
	client *Client
}

// NewOrderGateway is the constructor for the order gateway.
func NewOrderGateway(client *Client) service.OrderGateway {
	return &orderGateway{client: client}
}

type orderRequest struct {
	Products        []entity.OrderLine `json:"products"`
	TotalAmount     float64            `json:"total_amount"`
	DeliveryAddress *wireAddress       `json:"delivery_address"`
	PaymentMethod   string             `json:"payment_method"`
}

// PlaceOrder submits an order once and returns the created order.
func (g *orderGateway) PlaceOrder(ctx context.Context, submission service.OrderSubmission) (*entity.Order, error) {
	req := orderRequest{
		Products:        submission.Products,
		TotalAmount:     submission.TotalAmount,
		DeliveryAddress: toWireAddress(&submission.DeliveryAddress),
		PaymentMethod:   submission.PaymentMethod,
	}

	var order wireOrder
	if err := g.client.post(ctx, "/api/orders", req, &order, true); err != nil {
		return nil, err
	}

	return order.toEntity(), nil
}

// ListOrders returns the caller's own orders.
func (g *orderGateway) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	var orders []*wireOrder
	if err := g.client.get(ctx, "/api/orders", nil, &orders, true); err != nil {
		return nil, err
	}

	return wireOrdersToEntities(orders), nil
}

// CancelOrder requests cancellation while the backend still allows it.
func (g *orderGateway) CancelOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	var order wireOrder
	if err := g.client.post(ctx, "/api/orders/"+orderID+"/cancel", nil, &order, true); err != nil {
		return nil, err
	}

	return order.toEntity(), nil
}
