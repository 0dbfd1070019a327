// Package entity contains the core business objects of the project.
package entity

// PaymentState is the client-side view of a payment session. Pending is the
// only non-terminal state; everything else stops the poller.
type PaymentState string

const (
	// PaymentPending means the provider has not settled the session yet.
	PaymentPending PaymentState = "pending"
	// PaymentPaid means the provider confirmed the payment.
	PaymentPaid PaymentState = "paid"
	// PaymentExpired means the provider abandoned the session.
	PaymentExpired PaymentState = "expired"
	// PaymentError means a status query failed in transport.
	PaymentError PaymentState = "error"
	// PaymentTimeout means the attempt budget ran out while still pending.
	// It is a soft outcome: the session may still settle, so the caller is
	// offered a manual re-check rather than an error.
	PaymentTimeout PaymentState = "timeout"
)

// Terminal reports whether the poller stops on this state.
func (s PaymentState) Terminal() bool {
	return s != PaymentPending
}

// CheckoutSession is the provider handoff returned when a payment checkout
// is opened: the URL the shopper must visit and the id used to poll status.
type CheckoutSession struct {
	SessionID   string  `json:"session_id"`
	CheckoutURL string  `json:"checkout_url"`
	Amount      float64 `json:"amount"`
}

// PaymentStatus is one status-poll response.
type PaymentStatus struct {
	PaymentStatus string  `json:"payment_status"` // Provider value: "paid", "expired", "unpaid", ...
	Status        string  `json:"status"`         // Session status: "open", "complete", ...
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}
