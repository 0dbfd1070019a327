package usecase

import (
	"context"

	"shopmate/internal/domain/entity"
)

// TicketInput defines a new support ticket. Name and email prefill from the
// session when present but stay editable; tickets can reference another
// contact address.
type TicketInput struct {
	Name        string `validate:"required,min=3"`
	Email       string `validate:"required,email"`
	Subject     string `validate:"required"`
	Description string `validate:"required"`
}

// SupportUsecase is the customer side of the ticket surface.
type SupportUsecase interface {
	// Open files a new ticket.
	Open(ctx context.Context, input TicketInput) (*entity.SupportTicket, error)

	// Mine lists the caller's tickets.
	Mine(ctx context.Context) ([]*entity.SupportTicket, error)

	// Thread returns one ticket with its replies.
	Thread(ctx context.Context, ticketID string) (*entity.SupportTicket, error)

	// Reply appends a message to a ticket.
	Reply(ctx context.Context, ticketID, message string) (*entity.SupportTicket, error)

	// FAQs lists the published help entries, optionally filtered by
	// category. Available without signing in.
	FAQs(ctx context.Context, category string) ([]*entity.FAQ, error)
}
