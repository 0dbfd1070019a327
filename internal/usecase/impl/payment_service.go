package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "shopmate/internal/delivery/context"
	"shopmate/internal/domain/entity"
	apperrors "shopmate/internal/domain/errors"
	"shopmate/internal/domain/service"
	"shopmate/internal/usecase"

	"github.com/pkg/errors"
)

// paymentService implements the PaymentUsecase interface: the hosted
// checkout handoff and the bounded status poller.
type paymentService struct {
	gateway     service.PaymentGateway
	cart        usecase.CartUsecase
	interval    time.Duration
	maxAttempts int
	logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService. The interval and
// attempt cap come from configuration; the poller never adapts them at
// runtime.
func NewPaymentService(
	gateway service.PaymentGateway,
	cart usecase.CartUsecase,
	interval time.Duration,
	maxAttempts int,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	return &paymentService{
		gateway:     gateway,
		cart:        cart,
		interval:    interval,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OpenCheckout freezes the cart into a checkout session request.
func (srv *paymentService) OpenCheckout(ctx context.Context, hostURL string) (*entity.CheckoutSession, error) {
	items := srv.cart.Items()
	if len(items) == 0 {
		return nil, apperrors.ErrCartEmpty
	}

	lines := make([]service.CheckoutItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, service.CheckoutItem{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		})
	}

	session, err := srv.gateway.CreateCheckoutSession(ctx, lines, hostURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open checkout session")
	}

	srv.log(ctx).Info("checkout session opened",
		slog.String("session_id", session.SessionID),
		slog.Float64("amount", session.Amount),
	)

	return session, nil
}

// Poll queries the session status until a terminal state or the attempt
// cap. Each iteration queries first and waits after, so a settlement on the
// nth response costs exactly n queries. Timeout is a soft outcome: the
// outcome is returned with no error, and the cart stays as it is.
func (srv *paymentService) Poll(ctx context.Context, sessionID string) (*usecase.PollOutcome, error) {
	outcome := &usecase.PollOutcome{State: entity.PaymentPending}

	timer := time.NewTimer(srv.interval)
	defer timer.Stop()

	for outcome.Attempts < srv.maxAttempts {
		status, err := srv.gateway.GetPaymentStatus(ctx, sessionID)
		outcome.Attempts++
		if err != nil {
			// One failed query ends the run; the caller decides whether
			// to start another.
			outcome.State = entity.PaymentError

			return outcome, errors.Wrap(err, "payment status query failed")
		}

		outcome.Last = status
		outcome.State = classify(status)
		if outcome.State.Terminal() {
			srv.settle(ctx, outcome.State, sessionID)

			return outcome, nil
		}

		if outcome.Attempts == srv.maxAttempts {
			break
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(srv.interval)

		select {
		case <-ctx.Done():
			outcome.State = entity.PaymentError

			return outcome, errors.Wrap(ctx.Err(), "payment poll cancelled")
		case <-timer.C:
		}
	}

	outcome.State = entity.PaymentTimeout
	srv.log(ctx).Warn("payment poll exhausted",
		slog.String("session_id", sessionID),
		slog.Int("attempts", outcome.Attempts),
	)

	return outcome, nil
}

// CheckOnce is the manual re-check offered after a timeout: one query, with
// the same settlement side effects as the poller.
func (srv *paymentService) CheckOnce(ctx context.Context, sessionID string) (*entity.PaymentStatus, error) {
	status, err := srv.gateway.GetPaymentStatus(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "payment status query failed")
	}

	if state := classify(status); state.Terminal() {
		srv.settle(ctx, state, sessionID)
	}

	return status, nil
}

// settle applies the side effects of a terminal state. Only Paid touches
// the cart; Expired and Timeout leave it for the shopper to retry.
func (srv *paymentService) settle(ctx context.Context, state entity.PaymentState, sessionID string) {
	switch state {
	case entity.PaymentPaid:
		if err := srv.cart.Clear(ctx); err != nil {
			srv.log(ctx).Warn("payment settled but cart snapshot not cleared", slog.Any("error", err))
		}
		srv.log(ctx).Info("payment confirmed", slog.String("session_id", sessionID))
	case entity.PaymentExpired:
		srv.log(ctx).Info("payment session expired", slog.String("session_id", sessionID))
	default:
	}
}

// classify maps one status response onto the client-side payment state.
func classify(status *entity.PaymentStatus) entity.PaymentState {
	switch {
	case status.PaymentStatus == "paid":
		return entity.PaymentPaid
	case status.Status == "expired" || status.PaymentStatus == "expired":
		return entity.PaymentExpired
	default:
		return entity.PaymentPending
	}
}
