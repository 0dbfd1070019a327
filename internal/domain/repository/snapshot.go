// Package repository defines the interfaces for the local persistence layer.
// The client keeps two best-effort snapshots on disk: the session token and
// the cart. Neither is a source of truth; the backend is.
package repository

import (
	"context"

	"shopmate/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSnapshotNotFound is returned when no snapshot has been persisted yet.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// TokenStore persists the bearer token across process restarts.
type TokenStore interface {
	// LoadToken returns the persisted token, or ErrSnapshotNotFound.
	LoadToken(ctx context.Context) (string, error)

	// SaveToken overwrites the persisted token.
	SaveToken(ctx context.Context, token string) error

	// ClearToken removes the persisted token. Clearing an absent token is
	// not an error.
	ClearToken(ctx context.Context) error
}

// CartSnapshotStore persists the full cart after every mutation.
type CartSnapshotStore interface {
	// LoadCart returns the persisted cart. A missing, corrupt, or
	// unparseable snapshot yields an empty cart, never an error the caller
	// has to handle.
	LoadCart(ctx context.Context) *entity.Cart

	// SaveCart overwrites the persisted cart snapshot.
	SaveCart(ctx context.Context, cart *entity.Cart) error

	// ClearCart removes the persisted snapshot.
	ClearCart(ctx context.Context) error
}
