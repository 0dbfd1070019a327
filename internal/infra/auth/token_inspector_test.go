package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestJWTInspector_ExpiresAt(t *testing.T) {
	t.Parallel()

	inspector := NewJWTInspector()
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)

	token := signedToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": expiry.Unix(),
	})

	got, ok := inspector.ExpiresAt(token)
	require.True(t, ok)
	assert.True(t, got.Equal(expiry))
}

func TestJWTInspector_ExpiresAt_NoExpiryClaim(t *testing.T) {
	t.Parallel()

	inspector := NewJWTInspector()
	token := signedToken(t, jwt.MapClaims{"sub": "user-1"})

	_, ok := inspector.ExpiresAt(token)
	assert.False(t, ok)
}

func TestJWTInspector_ExpiresAt_NotAToken(t *testing.T) {
	t.Parallel()

	inspector := NewJWTInspector()

	_, ok := inspector.ExpiresAt("opaque-session-credential")
	assert.False(t, ok)
}
