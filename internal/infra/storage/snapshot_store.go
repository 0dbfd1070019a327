// Package storage persists the client's local snapshots (session token and
// cart) through a blob bucket. The default bucket is a directory on disk,
// which gives the browser-local-storage behavior of the web client: cheap,
// best-effort, and safe to lose.
package storage

import (
	"context"
	"encoding/json"
	"log/slog"

	"shopmate/config"
	"shopmate/internal/domain/entity"
	"shopmate/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

const (
	tokenKey = "token.json"
	cartKey  = "cart.json"
)

// tokenSnapshot wraps the raw token so the on-disk format can grow fields
// without breaking old snapshots.
type tokenSnapshot struct {
	Token string `json:"token"`
}

type snapshotStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Store combines the two local snapshot ports behind one bucket.
type Store interface {
	repository.TokenStore
	repository.CartSnapshotStore

	// Close releases the underlying bucket.
	Close() error
}

// New opens the snapshot bucket at the configured directory, creating it if
// needed.
func New(cfg *config.Config, logger *slog.Logger) (Store, error) {
	bucket, err := fileblob.OpenBucket(cfg.Storage.Dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open snapshot bucket at %s", cfg.Storage.Dir)
	}

	return &snapshotStore{bucket: bucket, logger: logger}, nil
}

// LoadToken returns the persisted token, or repository.ErrSnapshotNotFound.
func (s *snapshotStore) LoadToken(ctx context.Context) (string, error) {
	data, err := s.bucket.ReadAll(ctx, tokenKey)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", repository.ErrSnapshotNotFound
		}

		return "", errors.Wrap(err, "failed to read token snapshot")
	}

	var snapshot tokenSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil || snapshot.Token == "" {
		// A corrupt token snapshot is the same as no token.
		return "", repository.ErrSnapshotNotFound
	}

	return snapshot.Token, nil
}

// SaveToken overwrites the persisted token.
func (s *snapshotStore) SaveToken(ctx context.Context, token string) error {
	data, err := json.Marshal(tokenSnapshot{Token: token})
	if err != nil {
		return errors.Wrap(err, "failed to marshal token snapshot")
	}

	if err := s.bucket.WriteAll(ctx, tokenKey, data, nil); err != nil {
		return errors.Wrap(err, "failed to write token snapshot")
	}

	return nil
}

// ClearToken removes the persisted token. Idempotent.
func (s *snapshotStore) ClearToken(ctx context.Context) error {
	if err := s.bucket.Delete(ctx, tokenKey); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete token snapshot")
	}

	return nil
}

// LoadCart returns the persisted cart. A missing or unparseable snapshot is
// an empty cart, never an error.
func (s *snapshotStore) LoadCart(ctx context.Context) *entity.Cart {
	data, err := s.bucket.ReadAll(ctx, cartKey)
	if err != nil {
		if gcerrors.Code(err) != gcerrors.NotFound {
			s.logger.Warn("cart snapshot unreadable, starting empty", slog.Any("error", err))
		}

		return &entity.Cart{}
	}

	var cart entity.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		s.logger.Warn("cart snapshot corrupt, starting empty", slog.Any("error", err))

		return &entity.Cart{}
	}

	// Drop lines a bad snapshot could smuggle in; the cart invariant says
	// no item with quantity below one ever persists.
	valid := cart.Items[:0]
	for _, item := range cart.Items {
		if item.Quantity >= 1 && item.Product.ID != "" {
			valid = append(valid, item)
		}
	}
	cart.Items = valid

	return &cart
}

// SaveCart overwrites the persisted cart snapshot.
func (s *snapshotStore) SaveCart(ctx context.Context, cart *entity.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "failed to marshal cart snapshot")
	}

	if err := s.bucket.WriteAll(ctx, cartKey, data, nil); err != nil {
		return errors.Wrap(err, "failed to write cart snapshot")
	}

	return nil
}

// ClearCart removes the persisted snapshot. Idempotent.
func (s *snapshotStore) ClearCart(ctx context.Context) error {
	if err := s.bucket.Delete(ctx, cartKey); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete cart snapshot")
	}

	return nil
}

// Close releases the underlying bucket.
func (s *snapshotStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
