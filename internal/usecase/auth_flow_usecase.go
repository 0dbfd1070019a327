package usecase

import (
	"context"

	"shopmate/internal/domain/entity"
)

// RegisterInput defines the data required to create an account. The tags
// mirror the client-side gate: name at least 3 characters, plausible email,
// password at least 6. The backend may still reject with stricter rules.
type RegisterInput struct {
	Name     string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// AuthFlowUsecase drives the two OTP flows. Each transition is one backend
// call; a failed step is terminal for that step only and the user re-submits.
// Neither flow retries on its own.
type AuthFlowUsecase interface {
	// Register validates locally, creates the unverified account and moves
	// the flow to AwaitingOTP. The backend's welcome message is returned
	// for display.
	Register(ctx context.Context, input RegisterInput) (message string, err error)

	// VerifyRegistrationOTP proxies the code to the backend. Success moves
	// the flow to Verified, after which the account can log in.
	VerifyRegistrationOTP(ctx context.Context, otp string) error

	// ResendRegistrationOTP re-sends the code while AwaitingOTP by
	// re-posting the retained registration input (the backend re-sends the
	// OTP for an unverified email).
	ResendRegistrationOTP(ctx context.Context) (message string, err error)

	// RegistrationPhase reports where the registration flow stands.
	RegistrationPhase() entity.RegistrationPhase

	// RequestPasswordReset starts the reset flow for an email.
	RequestPasswordReset(ctx context.Context, email string) error

	// VerifyPasswordResetOTP checks the reset code; it must succeed before
	// ResetPassword is attempted.
	VerifyPasswordResetOTP(ctx context.Context, otp string) error

	// ResetPassword sets the new password and returns the flow to Idle.
	ResetPassword(ctx context.Context, newPassword string) error

	// PasswordResetPhase reports where the reset flow stands.
	PasswordResetPhase() entity.ResetPhase
}
