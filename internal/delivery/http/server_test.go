package http

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"shopmate/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) *CallbackServer {
	t.Helper()

	lc := fxtest.NewLifecycle(t)
	srv, err := NewCallbackServer(CallbackParams{
		Lifecycle: lc,
		Config:    &config.Config{},
		Logger:    discardLogger(),
	})
	require.NoError(t, err)

	return srv
}

func TestCallbackServer_Success(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/checkout/success?session_id=cs_1", nil)
	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)

	select {
	case event := <-srv.Events():
		assert.Equal(t, "cs_1", event.SessionID)
		assert.False(t, event.Cancelled)
	default:
		t.Fatal("expected a callback event")
	}
}

func TestCallbackServer_SuccessWithoutSessionID(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/checkout/success", nil)
	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, 400, rec.Code)

	select {
	case <-srv.Events():
		t.Fatal("no event expected for a bad redirect")
	default:
	}
}

func TestCallbackServer_Cancel(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/checkout/cancel?session_id=cs_1", nil)
	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)

	event := <-srv.Events()
	assert.True(t, event.Cancelled)
}
