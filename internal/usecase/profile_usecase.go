package usecase

import (
	"context"

	"shopmate/internal/domain/entity"
)

// ChangePasswordInput defines a password rotation.
type ChangePasswordInput struct {
	Current string `validate:"required"`
	Next    string `validate:"required,min=6"`
}

// ProfileUsecase covers account maintenance outside the checkout flow.
type ProfileUsecase interface {
	// ChangePassword rotates the password. A wrong current password is a
	// backend rejection surfaced verbatim.
	ChangePassword(ctx context.Context, input ChangePasswordInput) error

	// RemoveAddress deletes the delivery address and adopts the canonical
	// profile into the session.
	RemoveAddress(ctx context.Context) (*entity.User, error)

	// DeleteAccount permanently removes the account and ends the session.
	DeleteAccount(ctx context.Context) error

	// LoginHistory lists the account's login audit trail.
	LoginHistory(ctx context.Context) ([]*entity.LoginRecord, error)
}
