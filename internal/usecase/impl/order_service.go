package impl

import (
	"context"
	"log/slog"

	deliverycontext "shopmate/internal/delivery/context"
	"shopmate/internal/domain/entity"
	apperrors "shopmate/internal/domain/errors"
	"shopmate/internal/domain/service"
	"shopmate/internal/usecase"

	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	gateway service.OrderGateway
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(gateway service.OrderGateway, session usecase.SessionUsecase, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		gateway: gateway,
		session: session,
		logger:  logger,
	}
}

// History lists the caller's own orders.
func (srv *orderService) History(ctx context.Context) ([]*entity.Order, error) {
	if !srv.session.Current().Authenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	orders, err := srv.gateway.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Cancel requests cancellation of an order.
func (srv *orderService) Cancel(ctx context.Context, orderID string) (*entity.Order, error) {
	if !srv.session.Current().Authenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	order, err := srv.gateway.CancelOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel order")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("order cancelled", slog.String("order_id", orderID))

	return order, nil
}
