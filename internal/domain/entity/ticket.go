// Package entity contains the core business objects of the project.
package entity

import "time"

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

// SupportTicket is a customer support request with its reply thread.
type SupportTicket struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id,omitempty"` // Empty for tickets filed before signing in.
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Subject     string        `json:"subject"`
	Description string        `json:"description"`
	Status      TicketStatus  `json:"status"`
	Replies     []TicketReply `json:"replies,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// TicketReply is one message in a ticket's thread, from either side.
type TicketReply struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	FromStaff bool      `json:"from_staff"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
