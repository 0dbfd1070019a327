package service

import (
	"context"

	"shopmate/internal/domain/entity"
)

// ProfileUpdate is a full replacement of the editable profile fields. The
// client never merges partial data locally; it submits the whole profile and
// adopts whatever the backend returns.
type ProfileUpdate struct {
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	MobileNumber    string          `json:"mobile_number,omitempty"`
	DeliveryAddress *entity.Address `json:"delivery_address,omitempty"`
}

// ProfileGateway covers the signed-in account surface.
type ProfileGateway interface {
	// GetProfile fetches the canonical profile.
	GetProfile(ctx context.Context) (*entity.User, error)

	// UpdateProfile replaces the profile and returns the server-normalized
	// result, which callers must adopt wholesale.
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*entity.User, error)

	// ChangePassword rotates the account password.
	ChangePassword(ctx context.Context, current, next string) error

	// DeleteAddress removes the delivery address and returns the canonical
	// profile without it.
	DeleteAddress(ctx context.Context) (*entity.User, error)

	// DeleteAccount permanently removes the account.
	DeleteAccount(ctx context.Context) error

	// LoginHistory lists the account's login audit trail.
	LoginHistory(ctx context.Context) ([]*entity.LoginRecord, error)
}
