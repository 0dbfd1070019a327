package api

import (
	"context"

	"shopmate/internal/domain/entity"
	"shopmate/internal/domain/service"
)

type adminGateway struct {
	client *Client
}

// NewAdminGateway is the constructor for the admin gateway.
func NewAdminGateway(client *Client) service.AdminGateway {
	return &adminGateway{client: client}
}

type dashboardResponse struct {
	Stats struct {
		TotalProducts int `json:"total_products"`
		TotalOrders   int `json:"total_orders"`
		TotalUsers    int `json:"total_users"`
		OpenTickets   int `json:"open_tickets"`
	} `json:"stats"`
	RecentOrders []*wireOrder `json:"recent_orders"`
}

// DashboardStats returns the aggregate counters and recent orders.
func (g *adminGateway) DashboardStats(ctx context.Context) (*service.DashboardStats, error) {
	var resp dashboardResponse
	if err := g.client.get(ctx, "/api/admin/dashboard", nil, &resp, true); err != nil {
		return nil, err
	}

	return &service.DashboardStats{
		TotalProducts: resp.Stats.TotalProducts,
		TotalOrders:   resp.Stats.TotalOrders,
		TotalUsers:    resp.Stats.TotalUsers,
		OpenTickets:   resp.Stats.OpenTickets,
		RecentOrders:  wireOrdersToEntities(resp.RecentOrders),
	}, nil
}

// CreateProduct adds a catalog entry.
func (g *adminGateway) CreateProduct(ctx context.Context, input service.ProductInput) (*entity.Product, error) {
	var product entity.Product
	if err := g.client.post(ctx, "/api/admin/products", input, &product, true); err != nil {
		return nil, err
	}

	return &product, nil
}

// UpdateProduct replaces a catalog entry.
func (g *adminGateway) UpdateProduct(ctx context.Context, productID string, input service.ProductInput) (*entity.Product, error) {
	var product entity.Product
	if err := g.client.put(ctx, "/api/admin/products/"+productID, input, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// DeleteProduct removes a catalog entry.
func (g *adminGateway) DeleteProduct(ctx context.Context, productID string) error {
	return g.client.delete(ctx, "/api/admin/products/"+productID, nil)
}

// ListUsers returns all shopper accounts.
func (g *adminGateway) ListUsers(ctx context.Context) ([]*entity.User, error) {
	var users []*wireUser
	if err := g.client.get(ctx, "/api/admin/users", nil, &users, true); err != nil {
		return nil, err
	}

	return wireUsersToEntities(users), nil
}

// DeleteUser removes a shopper account.
func (g *adminGateway) DeleteUser(ctx context.Context, userID string) error {
	return g.client.delete(ctx, "/api/admin/users/"+userID, nil)
}

// ListOrders returns all orders store-wide.
func (g *adminGateway) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	var orders []*wireOrder
	if err := g.client.get(ctx, "/api/admin/orders", nil, &orders, true); err != nil {
		return nil, err
	}

	return wireOrdersToEntities(orders), nil
}

type orderStatusRequest struct {
	Status entity.OrderStatus `json:"status"`
}

// UpdateOrderStatus moves an order through its lifecycle.
func (g *adminGateway) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	var order wireOrder
	if err := g.client.put(ctx, "/api/admin/orders/"+orderID+"/status", orderStatusRequest{Status: status}, &order); err != nil {
		return nil, err
	}

	return order.toEntity(), nil
}

// ListTickets returns all support tickets.
func (g *adminGateway) ListTickets(ctx context.Context) ([]*entity.SupportTicket, error) {
	var tickets []*entity.SupportTicket
	if err := g.client.get(ctx, "/api/admin/support/tickets", nil, &tickets, true); err != nil {
		return nil, err
	}

	return tickets, nil
}

type ticketStatusRequest struct {
	Status entity.TicketStatus `json:"status"`
}

// UpdateTicketStatus moves a ticket through its lifecycle.
func (g *adminGateway) UpdateTicketStatus(ctx context.Context, ticketID string, status entity.TicketStatus) (*entity.SupportTicket, error) {
	var ticket entity.SupportTicket
	if err := g.client.put(ctx, "/api/admin/support/tickets/"+ticketID+"/status", ticketStatusRequest{Status: status}, &ticket); err != nil {
		return nil, err
	}

	return &ticket, nil
}

// ReplyTicket appends a staff reply to a ticket.
func (g *adminGateway) ReplyTicket(ctx context.Context, ticketID, message string) (*entity.SupportTicket, error) {
	var ticket entity.SupportTicket
	if err := g.client.post(ctx, "/api/admin/support/tickets/"+ticketID+"/reply", ticketReplyRequest{Message: message}, &ticket, true); err != nil {
		return nil, err
	}

	return &ticket, nil
}

// CreateFAQ publishes a help entry.
func (g *adminGateway) CreateFAQ(ctx context.Context, input service.FAQInput) (*entity.FAQ, error) {
	var faq entity.FAQ
	if err := g.client.post(ctx, "/api/admin/faqs", input, &faq, true); err != nil {
		return nil, err
	}

	return &faq, nil
}
