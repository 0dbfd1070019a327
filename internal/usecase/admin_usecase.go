package usecase

import (
	"context"

	"shopmate/internal/domain/entity"
	"shopmate/internal/domain/service"
)

// ProductEditInput defines an admin product create or replace.
type ProductEditInput struct {
	Name        string  `validate:"required,min=3"`
	Price       float64 `validate:"required,gt=0"`
	Description string  `validate:"required"`
	Category    string  `validate:"required"`
	Stock       int     `validate:"gte=0"`
	Images      []string
}

// FAQEditInput defines an admin help-entry publication.
type FAQEditInput struct {
	Question string `validate:"required"`
	Answer   string `validate:"required"`
	Category string `validate:"required"`
}

// AdminUsecase is the back office. Every operation pre-checks the session's
// admin role locally (fail fast) and lets the backend enforce it for real.
// Mutations re-fetch the affected list so views always show server state.
type AdminUsecase interface {
	// Dashboard returns the aggregate counters and recent orders.
	Dashboard(ctx context.Context) (*service.DashboardStats, error)

	// CreateProduct adds a product and returns the refreshed catalog.
	CreateProduct(ctx context.Context, input ProductEditInput) ([]*entity.Product, error)

	// UpdateProduct replaces a product and returns the refreshed catalog.
	UpdateProduct(ctx context.Context, productID string, input ProductEditInput) ([]*entity.Product, error)

	// DeleteProduct removes a product and returns the refreshed catalog.
	DeleteProduct(ctx context.Context, productID string) ([]*entity.Product, error)

	// Users lists all shopper accounts.
	Users(ctx context.Context) ([]*entity.User, error)

	// DeleteUser removes an account and returns the refreshed list.
	DeleteUser(ctx context.Context, userID string) ([]*entity.User, error)

	// Orders lists all orders store-wide.
	Orders(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrderStatus moves an order through its lifecycle.
	UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error)

	// Tickets lists all support tickets.
	Tickets(ctx context.Context) ([]*entity.SupportTicket, error)

	// UpdateTicketStatus moves a ticket through its lifecycle.
	UpdateTicketStatus(ctx context.Context, ticketID string, status entity.TicketStatus) (*entity.SupportTicket, error)

	// ReplyTicket appends a staff reply.
	ReplyTicket(ctx context.Context, ticketID, message string) (*entity.SupportTicket, error)

	// PublishFAQ adds a help entry and returns the refreshed list.
	PublishFAQ(ctx context.Context, input FAQEditInput) ([]*entity.FAQ, error)
}
