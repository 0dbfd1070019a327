package impl

import (
	"context"
	"log/slog"

	deliverycontext "shopmate/internal/delivery/context"
	"shopmate/internal/domain/entity"
	apperrors "shopmate/internal/domain/errors"
	"shopmate/internal/domain/service"
	"shopmate/internal/usecase"
	"shopmate/internal/validator"

	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface. The role check here
// only fails fast; the backend enforces authorization on every call.
type adminService struct {
	gateway  service.AdminGateway
	catalog  service.CatalogGateway // Product and FAQ lists come from the public endpoints.
	support  service.SupportGateway
	session  usecase.SessionUsecase
	validate *validator.Validator
	logger   *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	gateway service.AdminGateway,
	catalog service.CatalogGateway,
	support service.SupportGateway,
	session usecase.SessionUsecase,
	validate *validator.Validator,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		gateway:  gateway,
		catalog:  catalog,
		support:  support,
		session:  session,
		validate: validate,
		logger:   logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) requireAdmin() error {
	session := srv.session.Current()
	if !session.Authenticated() {
		return apperrors.ErrUnauthorized
	}
	if !session.IsAdmin() {
		return apperrors.ErrAdminRequired
	}

	return nil
}

// Dashboard returns the aggregate counters and recent orders.
func (srv *adminService) Dashboard(ctx context.Context) (*service.DashboardStats, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}

	stats, err := srv.gateway.DashboardStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dashboard")
	}

	return stats, nil
}

// CreateProduct adds a product and returns the refreshed catalog.
func (srv *adminService) CreateProduct(ctx context.Context, input usecase.ProductEditInput) ([]*entity.Product, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, err
	}

	product, err := srv.gateway.CreateProduct(ctx, productInput(input))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("product created", slog.String("product_id", product.ID))

	return srv.refreshCatalog(ctx)
}

// UpdateProduct replaces a product and returns the refreshed catalog.
func (srv *adminService) UpdateProduct(ctx context.Context, productID string, input usecase.ProductEditInput) ([]*entity.Product, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, err
	}

	if _, err := srv.gateway.UpdateProduct(ctx, productID, productInput(input)); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return srv.refreshCatalog(ctx)
}

// DeleteProduct removes a product and returns the refreshed catalog.
func (srv *adminService) DeleteProduct(ctx context.Context, productID string) ([]*entity.Product, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}

	if err := srv.gateway.DeleteProduct(ctx, productID); err != nil {
		return nil, errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("product deleted", slog.String("product_id", productID))

	return srv.refreshCatalog(ctx)
}

// Users lists all shopper accounts.
func (srv *adminService) Users(ctx context.Context) ([]*entity.User, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}

	users, err := srv.gateway.ListUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// DeleteUser removes an account and returns the refreshed list.
func (srv *adminService) DeleteUser(ctx context.Context, userID string) ([]*entity.User, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}

	if err := srv.gateway.DeleteUser(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("user deleted", slog.String("user_id", userID))

	return srv.Users(ctx)
}

// Orders lists all orders store-wide.
func (srv *adminService) Orders(ctx context.Context) ([]*entity.Order, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}

	orders, err := srv.gateway.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateOrderStatus moves an order through its lifecycle.
func (srv *adminService) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}

	order, err := srv.gateway.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("order status updated",
		slog.String("order_id", orderID),
		slog.String("status", string(status)),
	)

	return order, nil
}

// Tickets lists all support tickets.
func (srv *adminService) Tickets(ctx context.Context) ([]*entity.SupportTicket, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}

	tickets, err := srv.gateway.ListTickets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}

	return tickets, nil
}

// UpdateTicketStatus moves a ticket through its lifecycle.
func (srv *adminService) UpdateTicketStatus(ctx context.Context, ticketID string, status entity.TicketStatus) (*entity.SupportTicket, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}

	ticket, err := srv.gateway.UpdateTicketStatus(ctx, ticketID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update ticket status")
	}

	return ticket, nil
}

// ReplyTicket appends a staff reply.
func (srv *adminService) ReplyTicket(ctx context.Context, ticketID, message string) (*entity.SupportTicket, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}
	if err := srv.validate.Var(message, "required"); err != nil {
		return nil, err
	}

	ticket, err := srv.gateway.ReplyTicket(ctx, ticketID, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reply to ticket")
	}

	return ticket, nil
}

// PublishFAQ adds a help entry and returns the refreshed list.
func (srv *adminService) PublishFAQ(ctx context.Context, input usecase.FAQEditInput) ([]*entity.FAQ, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, err
	}

	faq, err := srv.gateway.CreateFAQ(ctx, service.FAQInput{
		Question: input.Question,
		Answer:   input.Answer,
		Category: input.Category,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to publish faq")
	}

	srv.log(ctx).Info("faq published", slog.String("faq_id", faq.ID))

	faqs, err := srv.support.ListFAQs(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh faqs")
	}

	return faqs, nil
}

func (srv *adminService) refreshCatalog(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.catalog.ListProducts(ctx, service.ProductQuery{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh catalog")
	}

	return products, nil
}

func productInput(input usecase.ProductEditInput) service.ProductInput {
	return service.ProductInput{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Category:    input.Category,
		Stock:       input.Stock,
		Images:      input.Images,
	}
}
