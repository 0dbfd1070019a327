package usecase

import (
	"context"

	"shopmate/internal/domain/entity"
)

// ProfileInput defines the full editable profile for a checkout save. The
// address fields mirror the order gate: nothing optional except the
// recipient overrides and the mobile number.
type ProfileInput struct {
	Name         string `validate:"required,min=3"`
	Email        string `validate:"required,email"`
	MobileNumber string
	Address      AddressInput
}

// AddressInput defines a complete delivery address.
type AddressInput struct {
	FullName    string
	PhoneNumber string
	Street      string `validate:"required"`
	City        string `validate:"required"`
	State       string `validate:"required"`
	PostalCode  string `validate:"required"`
	Country     string `validate:"required"`
}

// PlaceOrderInput selects how the order is paid.
type PlaceOrderInput struct {
	PaymentMethod string `validate:"required,oneof=cod online"`
}

// CheckoutUsecase reconciles the canonical profile with the cart and turns
// them into an order.
type CheckoutUsecase interface {
	// Prefill fetches the canonical profile for the checkout form. Requires
	// an authenticated session.
	Prefill(ctx context.Context) (*entity.User, error)

	// SaveProfile performs a full profile update and adopts the server's
	// canonical response into the session.
	SaveProfile(ctx context.Context, input ProfileInput) (*entity.User, error)

	// PlaceOrder validates the profile is order-complete (blocking, no
	// network on failure), freezes the cart into an order payload, submits
	// it once, and clears the cart only on success. Re-entry while a
	// submission is in flight fails with ErrCheckoutInFlight.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*entity.Order, error)

	// State reports the submission flow state for the UI.
	State() entity.FlowState
}
