// Package service defines the ports to external collaborators. For this
// client the one collaborator is the ShopMate backend; each gateway below is
// a slice of its REST surface.
package service

import "sync"

// TokenHolder is the process-wide carrier of the bearer credential. The
// session store writes it, the API client reads it on every request. It is
// the only piece of auth state shared across flows, so it carries its own
// lock instead of relying on callers.
type TokenHolder struct {
	mu    sync.RWMutex
	token string
}

// NewTokenHolder creates an empty (signed-out) holder.
func NewTokenHolder() *TokenHolder {
	return &TokenHolder{}
}

// Token returns the current bearer token, or empty when signed out.
func (h *TokenHolder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.token
}

// Set replaces the bearer token.
func (h *TokenHolder) Set(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// Clear removes the bearer token. Idempotent.
func (h *TokenHolder) Clear() {
	h.Set("")
}
