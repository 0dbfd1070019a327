package usecase

import (
	"context"

	"shopmate/internal/domain/entity"
)

// OrderUsecase is the shopper's order history surface.
type OrderUsecase interface {
	// History lists the caller's own orders.
	History(ctx context.Context) ([]*entity.Order, error)

	// Cancel requests cancellation of an order still in a cancellable
	// status. The backend has the final say.
	Cancel(ctx context.Context, orderID string) (*entity.Order, error)
}
