package impl

import (
	"context"
	"log/slog"

	"shopmate/internal/domain/entity"
	apperrors "shopmate/internal/domain/errors"
	"shopmate/internal/domain/service"
	"shopmate/internal/usecase"
	"shopmate/internal/validator"

	"github.com/pkg/errors"
)

// supportService implements the SupportUsecase interface.
type supportService struct {
	gateway  service.SupportGateway
	session  usecase.SessionUsecase
	validate *validator.Validator
	logger   *slog.Logger
}

// NewSupportService is the constructor for supportService.
func NewSupportService(
	gateway service.SupportGateway,
	session usecase.SessionUsecase,
	validate *validator.Validator,
	logger *slog.Logger,
) usecase.SupportUsecase {
	return &supportService{
		gateway:  gateway,
		session:  session,
		validate: validate,
		logger:   logger,
	}
}

// Open files a new ticket. Name and email prefill from the session when the
// caller left them empty, but an explicit value always wins.
func (srv *supportService) Open(ctx context.Context, input usecase.TicketInput) (*entity.SupportTicket, error) {
	if session := srv.session.Current(); session.Authenticated() {
		if input.Name == "" {
			input.Name = session.User.Name
		}
		if input.Email == "" {
			input.Email = session.User.Email
		}
	}

	if err := srv.validate.Struct(input); err != nil {
		return nil, err
	}

	ticket, err := srv.gateway.CreateTicket(ctx, service.TicketSubmission{
		Name:        input.Name,
		Email:       input.Email,
		Subject:     input.Subject,
		Description: input.Description,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open ticket")
	}

	return ticket, nil
}

// Mine lists the caller's tickets.
func (srv *supportService) Mine(ctx context.Context) ([]*entity.SupportTicket, error) {
	if !srv.session.Current().Authenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	tickets, err := srv.gateway.MyTickets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}

	return tickets, nil
}

// Thread returns one ticket with its replies.
func (srv *supportService) Thread(ctx context.Context, ticketID string) (*entity.SupportTicket, error) {
	if !srv.session.Current().Authenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	ticket, err := srv.gateway.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ticket")
	}

	return ticket, nil
}

// FAQs lists the published help entries. No account needed.
func (srv *supportService) FAQs(ctx context.Context, category string) ([]*entity.FAQ, error) {
	faqs, err := srv.gateway.ListFAQs(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list faqs")
	}

	return faqs, nil
}

// Reply appends a message to a ticket.
func (srv *supportService) Reply(ctx context.Context, ticketID, message string) (*entity.SupportTicket, error) {
	if !srv.session.Current().Authenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	if err := srv.validate.Var(message, "required"); err != nil {
		return nil, err
	}

	ticket, err := srv.gateway.ReplyTicket(ctx, ticketID, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reply to ticket")
	}

	return ticket, nil
}
