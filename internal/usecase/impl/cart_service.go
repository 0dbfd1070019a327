package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "shopmate/internal/delivery/context"
	"shopmate/internal/domain/entity"
	"shopmate/internal/domain/repository"
	"shopmate/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface. It is the process-wide
// cart: one instance backs every view, mutations persist the full snapshot
// before returning, and totals are derived on demand.
type cartService struct {
	store  repository.CartSnapshotStore
	logger *slog.Logger

	mu   sync.RWMutex
	cart *entity.Cart
}

// NewCartService is the constructor for cartService. It hydrates from the
// persisted snapshot; a missing or corrupt snapshot yields an empty cart.
func NewCartService(ctx context.Context, store repository.CartSnapshotStore, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		store:  store,
		logger: logger,
		cart:   store.LoadCart(ctx),
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add merges quantity into the line for the product, or appends a new line.
func (srv *cartService) Add(ctx context.Context, product entity.Product, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if i := srv.cart.Find(product.ID); i >= 0 {
		srv.cart.Items[i].Quantity += quantity
	} else {
		srv.cart.Items = append(srv.cart.Items, entity.CartItem{Product: product, Quantity: quantity})
	}

	return srv.persistLocked(ctx)
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (srv *cartService) UpdateQuantity(ctx context.Context, productID string, quantity int) (*entity.Cart, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	i := srv.cart.Find(productID)
	if i < 0 {
		return srv.snapshotLocked(), nil
	}

	if quantity < 1 {
		srv.cart.Items = append(srv.cart.Items[:i], srv.cart.Items[i+1:]...)
	} else {
		srv.cart.Items[i].Quantity = quantity
	}

	return srv.persistLocked(ctx)
}

// Remove deletes the line for the product, if present.
func (srv *cartService) Remove(ctx context.Context, productID string) (*entity.Cart, error) {
	return srv.UpdateQuantity(ctx, productID, 0)
}

// Clear empties the cart and purges the persisted snapshot.
func (srv *cartService) Clear(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.cart = &entity.Cart{}

	if err := srv.store.ClearCart(ctx); err != nil {
		return errors.Wrap(err, "failed to clear cart snapshot")
	}

	return nil
}

// Items returns a copy of the current line items.
func (srv *cartService) Items() []entity.CartItem {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	items := make([]entity.CartItem, len(srv.cart.Items))
	copy(items, srv.cart.Items)

	return items
}

// TotalPrice recomputes the grand total from the line items.
func (srv *cartService) TotalPrice() float64 {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.cart.TotalPrice()
}

// TotalItems recomputes the summed quantities from the line items.
func (srv *cartService) TotalItems() int {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.cart.TotalItems()
}

// persistLocked writes the snapshot and returns a copy of the cart. A
// failed write still returns the in-memory cart; the user keeps shopping
// and the next mutation retries the snapshot.
func (srv *cartService) persistLocked(ctx context.Context) (*entity.Cart, error) {
	if err := srv.store.SaveCart(ctx, srv.cart); err != nil {
		srv.log(ctx).Warn("failed to persist cart", slog.Any("error", err))
	}

	return srv.snapshotLocked(), nil
}

// snapshotLocked copies the cart so callers cannot mutate shared state.
func (srv *cartService) snapshotLocked() *entity.Cart {
	items := make([]entity.CartItem, len(srv.cart.Items))
	copy(items, srv.cart.Items)

	return &entity.Cart{Items: items}
}
