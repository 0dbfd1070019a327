package api

import (
	"context"
	"net/url"

	"shopmate/internal/domain/entity"
	"shopmate/internal/domain/service"
)

type supportGateway struct {
	client *Client
}

// NewSupportGateway is the constructor for the support gateway.
func NewSupportGateway(client *Client) service.SupportGateway {
	return &supportGateway{client: client}
}

// CreateTicket opens a new ticket. Authenticated so the backend can link the
// ticket to the account.
func (g *supportGateway) CreateTicket(ctx context.Context, submission service.TicketSubmission) (*entity.SupportTicket, error) {
	var ticket entity.SupportTicket
	if err := g.client.post(ctx, "/api/support/tickets", submission, &ticket, true); err != nil {
		return nil, err
	}

	return &ticket, nil
}

// MyTickets lists the caller's tickets.
func (g *supportGateway) MyTickets(ctx context.Context) ([]*entity.SupportTicket, error) {
	var tickets []*entity.SupportTicket
	if err := g.client.get(ctx, "/api/support/tickets/my", nil, &tickets, true); err != nil {
		return nil, err
	}

	return tickets, nil
}

// GetTicket returns one ticket with its reply thread.
func (g *supportGateway) GetTicket(ctx context.Context, ticketID string) (*entity.SupportTicket, error) {
	var ticket entity.SupportTicket
	if err := g.client.get(ctx, "/api/support/tickets/"+ticketID, nil, &ticket, true); err != nil {
		return nil, err
	}

	return &ticket, nil
}

type ticketReplyRequest struct {
	Message string `json:"message"`
}

// ReplyTicket appends a message to the ticket's thread.
func (g *supportGateway) ReplyTicket(ctx context.Context, ticketID, message string) (*entity.SupportTicket, error) {
	var ticket entity.SupportTicket
	if err := g.client.post(ctx, "/api/support/tickets/"+ticketID+"/reply", ticketReplyRequest{Message: message}, &ticket, true); err != nil {
		return nil, err
	}

	return &ticket, nil
}

// ListFAQs returns the published help entries. Public route, no token.
func (g *supportGateway) ListFAQs(ctx context.Context, category string) ([]*entity.FAQ, error) {
	var query url.Values
	if category != "" {
		query = url.Values{"category": []string{category}}
	}

	var faqs []*entity.FAQ
	if err := g.client.get(ctx, "/api/faqs", query, &faqs, false); err != nil {
		return nil, err
	}

	return faqs, nil
}
