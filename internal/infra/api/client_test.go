package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopmate/config"
	"shopmate/internal/domain/entity"
	domainerrors "shopmate/internal/domain/errors"
	"shopmate/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *service.TokenHolder) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL
	cfg.API.Timeout = 5 * time.Second

	tokens := service.NewTokenHolder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClient(cfg, tokens, logger), tokens
}

func TestClient_AttachesBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	client, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "u1"})
	}))

	tokens.Set("tok-123")

	var out map[string]string
	err := client.get(context.Background(), "/api/auth/me", nil, &out, true)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "u1", out["id"])
}

func TestClient_ProtectedCallWithoutToken(t *testing.T) {
	t.Parallel()

	var called bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	err := client.get(context.Background(), "/api/users/profile", nil, nil, true)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.False(t, called, "no request must be attempted without a token")
}

func TestClient_RemoteRejectionKeptVerbatim(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Insufficient stock for Mug"})
	}))

	err := client.post(context.Background(), "/api/orders", map[string]any{}, nil, false)
	require.Error(t, err)

	var remote *domainerrors.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "Insufficient stock for Mug", remote.Message())
	assert.Equal(t, http.StatusBadRequest, remote.HTTPCode())
	assert.False(t, remote.Unauthorized())
}

func TestClient_MessageEnvelopeFallback(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Email already registered"})
	}))

	err := client.post(context.Background(), "/api/auth/register", map[string]any{}, nil, false)

	var remote *domainerrors.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "Email already registered", remote.Message())
}

func TestClient_TransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL
	cfg.API.Timeout = time.Second
	client := NewClient(cfg, service.NewTokenHolder(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := client.get(context.Background(), "/api/products", nil, nil, false)
	require.Error(t, err)

	var transport *domainerrors.TransportError
	assert.ErrorAs(t, err, &transport)
}

func TestProfileGateway_AbsorbsPincodeSpelling(t *testing.T) {
	t.Parallel()

	client, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"id": "u1",
			"name": "Alice",
			"email": "alice@x.com",
			"role": "user",
			"delivery_address": {
				"street": "1 MG Road",
				"city": "Bengaluru",
				"state": "KA",
				"pincode": "560001",
				"country": "IN"
			}
		}`))
	}))
	tokens.Set("tok")

	gateway := NewProfileGateway(client)
	user, err := gateway.GetProfile(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user.DeliveryAddress)
	assert.Equal(t, "560001", user.DeliveryAddress.PostalCode)
}

func TestOrderGateway_WritesBothPostalSpellings(t *testing.T) {
	t.Parallel()

	var body map[string]any
	client, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"id":"o1","status":"pending","total_amount":250.5}`))
	}))
	tokens.Set("tok")

	gateway := NewOrderGateway(client)
	_, err := gateway.PlaceOrder(context.Background(), service.OrderSubmission{
		TotalAmount:   250.50,
		PaymentMethod: "cod",
		DeliveryAddress: entity.Address{
			Street:     "1 MG Road",
			City:       "Bengaluru",
			State:      "KA",
			PostalCode: "560001",
			Country:    "IN",
		},
	})
	require.NoError(t, err)

	addr, ok := body["delivery_address"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "560001", addr["postal_code"])
	assert.Equal(t, "560001", addr["pincode"])
}

func TestPaymentGateway_StatusPath(t *testing.T) {
	t.Parallel()

	var gotPath string
	client, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{
			"payment_status": "paid",
			"status":         "complete",
			"amount":         250.50,
			"currency":       "inr",
		})
	}))
	tokens.Set("tok")

	gateway := NewPaymentGateway(client)
	status, err := gateway.GetPaymentStatus(context.Background(), "cs_test_123")
	require.NoError(t, err)
	assert.Equal(t, "/api/payments/status/cs_test_123", gotPath)
	assert.Equal(t, "paid", status.PaymentStatus)
}

func TestSupportGateway_FAQsArePublic(t *testing.T) {
	t.Parallel()

	var gotPath, gotCategory, gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCategory = r.URL.Query().Get("category")
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[{"id":"f1","question":"How long is shipping?","answer":"3-5 days","category":"shipping"}]`))
	}))

	gateway := NewSupportGateway(client)
	faqs, err := gateway.ListFAQs(context.Background(), "shipping")
	require.NoError(t, err)
	require.Len(t, faqs, 1)
	assert.Equal(t, "/api/faqs", gotPath)
	assert.Equal(t, "shipping", gotCategory)
	assert.Empty(t, gotAuth, "faqs need no token")
}
