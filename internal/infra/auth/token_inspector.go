// Package auth provides concrete implementations for authentication-related
// domain services on the client side.
package auth

import (
	"time"

	"shopmate/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// jwtInspector reads claims from the backend-issued JWT without verifying
// it. Verification needs the backend's secret, which the client must never
// hold; the token stays an opaque credential everywhere except this one
// expiry read.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// ExpiresAt returns the exp claim of the token, if it has one.
func (i *jwtInspector) ExpiresAt(token string) (time.Time, bool) {
	parsed, _, err := i.parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	expiry, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}

	return expiry.Time, true
}
