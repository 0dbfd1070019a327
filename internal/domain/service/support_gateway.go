package service

import (
	"context"

	"shopmate/internal/domain/entity"
)

// TicketSubmission is the payload for opening a support ticket. Name and
// email are explicit because tickets may be filed before signing in.
type TicketSubmission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

// SupportGateway covers the customer side of the ticket surface.
type SupportGateway interface {
	// CreateTicket opens a new ticket.
	CreateTicket(ctx context.Context, submission TicketSubmission) (*entity.SupportTicket, error)

	// MyTickets lists the caller's tickets.
	MyTickets(ctx context.Context) ([]*entity.SupportTicket, error)

	// GetTicket returns one ticket with its reply thread.
	GetTicket(ctx context.Context, ticketID string) (*entity.SupportTicket, error)

	// ReplyTicket appends a message to the ticket's thread.
	ReplyTicket(ctx context.Context, ticketID, message string) (*entity.SupportTicket, error)

	// ListFAQs returns the published help entries, optionally filtered by
	// category. Public, no account needed.
	ListFAQs(ctx context.Context, category string) ([]*entity.FAQ, error)
}
