package usecase

import (
	"context"

	"shopmate/internal/domain/entity"
)

// PollOutcome is the result of one bounded poll run.
type PollOutcome struct {
	State    entity.PaymentState   // Terminal state the poll ended in.
	Attempts int                   // Status queries actually issued.
	Last     *entity.PaymentStatus // Last response seen, nil if none succeeded.
}

// PaymentUsecase handles the external payment handoff: opening a hosted
// checkout session and polling its status to a terminal state.
type PaymentUsecase interface {
	// OpenCheckout freezes the cart into a checkout session request and
	// returns the provider handoff (URL plus session id).
	OpenCheckout(ctx context.Context, hostURL string) (*entity.CheckoutSession, error)

	// Poll queries the session status at a fixed interval until a terminal
	// state or the attempt cap. Paid clears the cart; Timeout leaves it
	// untouched and is a soft outcome inviting a manual re-check. The
	// context cancels the loop early.
	Poll(ctx context.Context, sessionID string) (*PollOutcome, error)

	// CheckOnce is the manual re-check offered after a Timeout: a single
	// status query, clearing the cart if it comes back paid.
	CheckOnce(ctx context.Context, sessionID string) (*entity.PaymentStatus, error)
}
