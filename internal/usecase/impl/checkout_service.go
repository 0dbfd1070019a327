package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	deliverycontext "shopmate/internal/delivery/context"
	"shopmate/internal/domain/entity"
	apperrors "shopmate/internal/domain/errors"
	"shopmate/internal/domain/service"
	"shopmate/internal/usecase"
	"shopmate/internal/validator"

	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface. It reconciles
// the canonical profile with the cart and turns them into an order.
type checkoutService struct {
	session  usecase.SessionUsecase
	cart     usecase.CartUsecase
	profiles service.ProfileGateway
	orders   service.OrderGateway
	validate *validator.Validator
	logger   *slog.Logger

	inFlight atomic.Bool
	mu       sync.RWMutex
	state    entity.FlowState
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	session usecase.SessionUsecase,
	cart usecase.CartUsecase,
	profiles service.ProfileGateway,
	orders service.OrderGateway,
	validate *validator.Validator,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		session:  session,
		cart:     cart,
		profiles: profiles,
		orders:   orders,
		validate: validate,
		logger:   logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Prefill fetches the canonical profile for the checkout form.
func (srv *checkoutService) Prefill(ctx context.Context) (*entity.User, error) {
	if !srv.session.Current().Authenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := srv.profiles.GetProfile(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	srv.session.AdoptUser(user)

	return user, nil
}

// SaveProfile replaces the profile wholesale and adopts the server's
// canonical response into the session.
func (srv *checkoutService) SaveProfile(ctx context.Context, input usecase.ProfileInput) (*entity.User, error) {
	if !srv.session.Current().Authenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	if err := srv.validate.Struct(input); err != nil {
		return nil, err
	}

	update := service.ProfileUpdate{
		Name:         input.Name,
		Email:        input.Email,
		MobileNumber: input.MobileNumber,
		DeliveryAddress: &entity.Address{
			FullName:    input.Address.FullName,
			PhoneNumber: input.Address.PhoneNumber,
			Street:      input.Address.Street,
			City:        input.Address.City,
			State:       input.Address.State,
			PostalCode:  input.Address.PostalCode,
			Country:     input.Address.Country,
		},
	}

	user, err := srv.profiles.UpdateProfile(ctx, update)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	srv.session.AdoptUser(user)

	return user, nil
}

// PlaceOrder runs the blocking gate, freezes the cart into an order payload
// and submits it exactly once. When the gate fails, no request is sent. The
// cart is cleared only after the backend confirms the order.
func (srv *checkoutService) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if !srv.inFlight.CompareAndSwap(false, true) {
		return nil, apperrors.ErrCheckoutInFlight
	}
	defer srv.inFlight.Store(false)

	srv.setState(entity.FlowState{Phase: entity.FlowInFlight})

	order, err := srv.placeOrder(ctx, input)
	if err != nil {
		srv.setState(entity.FlowState{Phase: entity.FlowFailed, Reason: err.Error()})

		return nil, err
	}

	srv.setState(entity.FlowState{Phase: entity.FlowSucceeded})

	return order, nil
}

func (srv *checkoutService) placeOrder(ctx context.Context, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, err
	}

	session := srv.session.Current()
	if !session.Authenticated() {
		return nil, apperrors.ErrUnauthorized
	}
	if !session.User.DeliveryAddress.Complete() {
		return nil, apperrors.ErrAddressIncomplete
	}

	items := srv.cart.Items()
	if len(items) == 0 {
		return nil, apperrors.ErrCartEmpty
	}

	// Freeze the cart as of now; concurrent cart edits do not leak into
	// the submission.
	lines := make([]entity.OrderLine, 0, len(items))
	var total float64
	for _, item := range items {
		lines = append(lines, entity.OrderLine{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
			Total:     item.LineTotal(),
		})
		total += item.LineTotal()
	}

	submission := service.OrderSubmission{
		Products:        lines,
		TotalAmount:     total,
		DeliveryAddress: *session.User.DeliveryAddress,
		PaymentMethod:   input.PaymentMethod,
	}

	order, err := srv.orders.PlaceOrder(ctx, submission)
	if err != nil {
		// The cart is untouched; the user may retry deliberately.
		return nil, errors.Wrap(err, "order submission failed")
	}

	if err := srv.cart.Clear(ctx); err != nil {
		// The order exists server-side; a stale local cart is the lesser
		// problem and the next mutation rewrites the snapshot.
		srv.log(ctx).Warn("order placed but cart snapshot not cleared", slog.Any("error", err))
	}

	srv.log(ctx).Info("order placed",
		slog.String("order_id", order.ID),
		slog.Float64("total", order.TotalAmount),
	)

	return order, nil
}

// State reports the submission flow state.
func (srv *checkoutService) State() entity.FlowState {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.state
}

func (srv *checkoutService) setState(state entity.FlowState) {
	srv.mu.Lock()
	srv.state = state
	srv.mu.Unlock()
}
