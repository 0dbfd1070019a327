// Package delivery defines the inbound surfaces of the client. The one
// server it runs is the local payment-callback listener.
package delivery

import "context"

// Delivery is a long-running inbound surface.
type Delivery interface {
	// Serve blocks until the server stops or the context ends.
	Serve(ctx context.Context) error
}
