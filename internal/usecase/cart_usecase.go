package usecase

import (
	"context"

	"shopmate/internal/domain/entity"
)

// CartUsecase is the process-wide cart store. Line items merge by product
// id, quantities never drop below one, and every mutation persists the full
// snapshot before returning.
type CartUsecase interface {
	// Add merges quantity into an existing line for the product or appends
	// a new one. No upper bound is enforced here; stock is the backend's
	// call at order time.
	Add(ctx context.Context, product entity.Product, quantity int) (*entity.Cart, error)

	// UpdateQuantity sets a line's quantity. A quantity of zero or less is
	// defined as removal.
	UpdateQuantity(ctx context.Context, productID string, quantity int) (*entity.Cart, error)

	// Remove deletes the line for the product, if present.
	Remove(ctx context.Context, productID string) (*entity.Cart, error)

	// Clear empties the cart and purges the persisted snapshot.
	Clear(ctx context.Context) error

	// Items returns a copy of the current line items.
	Items() []entity.CartItem

	// TotalPrice recomputes the grand total on demand; it is never cached.
	TotalPrice() float64

	// TotalItems recomputes the summed quantities on demand.
	TotalItems() int
}
