package service

import "time"

// TokenInspector reads standard claims out of a bearer token without
// verifying its signature. The client holds no signing secret; the backend
// remains the authority. Inspection only lets restore skip a whoami call for
// a token that is already past its expiry.
type TokenInspector interface {
	// ExpiresAt returns the token's expiry claim. ok is false when the token
	// is not parseable or carries no expiry, in which case the caller must
	// fall through to server-side validation.
	ExpiresAt(token string) (expiry time.Time, ok bool)
}
