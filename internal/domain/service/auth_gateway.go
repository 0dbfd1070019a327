package service

import (
	"context"

	"shopmate/internal/domain/entity"
)

// RegisterRequest is the payload for creating an unverified account. The
// backend emails a registration OTP as a side effect; posting the same
// payload again re-sends the code.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthGateway covers the unauthenticated part of the backend surface:
// registration, OTP verification, login and the password-reset sequence.
type AuthGateway interface {
	// Register creates an unverified account and triggers the OTP email.
	Register(ctx context.Context, req RegisterRequest) (message string, err error)

	// VerifyRegistrationOTP proves control of the registration email. The
	// client never checks the code locally; it proxies the backend verdict.
	VerifyRegistrationOTP(ctx context.Context, email, otp string) error

	// Login exchanges credentials for a bearer token and the canonical user.
	Login(ctx context.Context, email, password string) (token string, user *entity.User, err error)

	// Me validates the held bearer token and returns the current user.
	Me(ctx context.Context) (*entity.User, error)

	// RequestPasswordReset triggers the reset OTP email.
	RequestPasswordReset(ctx context.Context, email string) error

	// VerifyPasswordResetOTP checks the reset OTP without consuming it.
	VerifyPasswordResetOTP(ctx context.Context, email, otp string) error

	// ResetPassword sets a new password after a verified reset OTP.
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
}
