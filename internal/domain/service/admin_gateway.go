package service

import (
	"context"

	"shopmate/internal/domain/entity"
)

// DashboardStats is the admin landing summary.
type DashboardStats struct {
	TotalProducts int             `json:"total_products"`
	TotalOrders   int             `json:"total_orders"`
	TotalUsers    int             `json:"total_users"`
	OpenTickets   int             `json:"open_tickets"`
	RecentOrders  []*entity.Order `json:"recent_orders"`
}

// ProductInput is the admin payload for creating or replacing a product.
type ProductInput struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images,omitempty"`
}

// FAQInput is the admin payload for publishing a help entry.
type FAQInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// AdminGateway covers the back-office surface. Every call requires an admin
// session; the backend enforces the role, the client only pre-checks it.
type AdminGateway interface {
	// DashboardStats returns the aggregate counters and recent orders.
	DashboardStats(ctx context.Context) (*DashboardStats, error)

	// CreateProduct adds a catalog entry.
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct replaces a catalog entry.
	UpdateProduct(ctx context.Context, productID string, input ProductInput) (*entity.Product, error)

	// DeleteProduct removes a catalog entry.
	DeleteProduct(ctx context.Context, productID string) error

	// ListUsers returns all shopper accounts.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// DeleteUser removes a shopper account.
	DeleteUser(ctx context.Context, userID string) error

	// ListOrders returns all orders store-wide.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrderStatus moves an order through its lifecycle.
	UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error)

	// ListTickets returns all support tickets.
	ListTickets(ctx context.Context) ([]*entity.SupportTicket, error)

	// UpdateTicketStatus moves a ticket through its lifecycle.
	UpdateTicketStatus(ctx context.Context, ticketID string, status entity.TicketStatus) (*entity.SupportTicket, error)

	// ReplyTicket appends a staff reply to a ticket.
	ReplyTicket(ctx context.Context, ticketID, message string) (*entity.SupportTicket, error)

	// CreateFAQ publishes a help entry.
	CreateFAQ(ctx context.Context, input FAQInput) (*entity.FAQ, error)
}
