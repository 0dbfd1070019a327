package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"shopmate/config"
	"shopmate/internal/domain/entity"
	"shopmate/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (Store, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Storage.Dir = dir

	store, err := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store, dir
}

func TestSnapshotStore_TokenRoundTrip(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.LoadToken(ctx)
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)

	require.NoError(t, store.SaveToken(ctx, "bearer-abc"))

	token, err := store.LoadToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bearer-abc", token)

	require.NoError(t, store.ClearToken(ctx))
	_, err = store.LoadToken(ctx)
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)

	// Clearing again is not an error.
	require.NoError(t, store.ClearToken(ctx))
}

func TestSnapshotStore_CartRoundTrip(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	cart := &entity.Cart{Items: []entity.CartItem{
		{Product: entity.Product{ID: "p1", Name: "Mug", Price: 100}, Quantity: 2},
	}}

	require.NoError(t, store.SaveCart(ctx, cart))

	loaded := store.LoadCart(ctx)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "p1", loaded.Items[0].Product.ID)
	assert.Equal(t, 2, loaded.Items[0].Quantity)

	require.NoError(t, store.ClearCart(ctx))
	assert.Empty(t, store.LoadCart(ctx).Items)
}

func TestSnapshotStore_CorruptCartIsEmpty(t *testing.T) {
	t.Parallel()

	store, dir := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cart.json"), []byte("{not json"), 0o600))

	loaded := store.LoadCart(ctx)
	assert.Empty(t, loaded.Items)
}

func TestSnapshotStore_InvalidLinesDropped(t *testing.T) {
	t.Parallel()

	store, dir := newTestStore(t)
	ctx := context.Background()

	// A hand-edited snapshot with a zero quantity and a missing product id.
	raw := `{"items":[` +
		`{"product":{"id":"p1","price":50},"quantity":0},` +
		`{"product":{"id":"","price":10},"quantity":3},` +
		`{"product":{"id":"p2","price":25},"quantity":1}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cart.json"), []byte(raw), 0o600))

	loaded := store.LoadCart(ctx)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "p2", loaded.Items[0].Product.ID)
}

func TestSnapshotStore_CorruptTokenIsAbsent(t *testing.T) {
	t.Parallel()

	store, dir := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "token.json"), []byte("garbage"), 0o600))

	_, err := store.LoadToken(ctx)
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}
