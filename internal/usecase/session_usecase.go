// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shopmate/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required to sign in.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// SessionUsecase is the process-wide session store. One instance backs every
// view; mutations are atomic from the caller's perspective (state update
// plus snapshot write).
type SessionUsecase interface {
	// Restore reads the persisted token and validates it with a single
	// whoami call. Any failure discards the token and yields an empty
	// session; restore itself never fails the application.
	Restore(ctx context.Context) *entity.Session

	// Login exchanges credentials for a validated session and persists the
	// token. On failure the session is left unchanged and the backend's
	// reason is surfaced.
	Login(ctx context.Context, input LoginInput) (*entity.Session, error)

	// Logout clears the session and the persisted token. Idempotent; the
	// in-memory session is cleared even if the snapshot delete fails.
	Logout(ctx context.Context) error

	// Current returns the live session.
	Current() *entity.Session

	// AdoptUser replaces the cached user with server-canonical data after a
	// profile mutation. Partial local merges are forbidden; only whole
	// server responses are adopted.
	AdoptUser(user *entity.User)
}
