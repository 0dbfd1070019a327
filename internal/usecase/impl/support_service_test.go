package impl

import (
	"context"
	"testing"

	"shopmate/internal/domain/entity"
	apperrors "shopmate/internal/domain/errors"
	"shopmate/internal/domain/service"
	"shopmate/internal/usecase"
	"shopmate/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSupportGateway struct {
	submissions []service.TicketSubmission
	faqs        []*entity.FAQ
	faqFilters  []string
}

func (g *fakeSupportGateway) CreateTicket(_ context.Context, submission service.TicketSubmission) (*entity.SupportTicket, error) {
	g.submissions = append(g.submissions, submission)

	return &entity.SupportTicket{
		ID:      "t1",
		Name:    submission.Name,
		Email:   submission.Email,
		Subject: submission.Subject,
		Status:  entity.TicketOpen,
	}, nil
}

func (g *fakeSupportGateway) MyTickets(context.Context) ([]*entity.SupportTicket, error) {
	return []*entity.SupportTicket{{ID: "t1"}}, nil
}

func (g *fakeSupportGateway) GetTicket(_ context.Context, ticketID string) (*entity.SupportTicket, error) {
	return &entity.SupportTicket{ID: ticketID}, nil
}

func (g *fakeSupportGateway) ReplyTicket(_ context.Context, ticketID, message string) (*entity.SupportTicket, error) {
	return &entity.SupportTicket{ID: ticketID, Replies: []entity.TicketReply{{Message: message}}}, nil
}

func (g *fakeSupportGateway) ListFAQs(_ context.Context, category string) ([]*entity.FAQ, error) {
	g.faqFilters = append(g.faqFilters, category)
	if category == "" {
		return g.faqs, nil
	}

	var filtered []*entity.FAQ
	for _, faq := range g.faqs {
		if faq.Category == category {
			filtered = append(filtered, faq)
		}
	}

	return filtered, nil
}

func newSupportFixture(session *fakeSession) (usecase.SupportUsecase, *fakeSupportGateway) {
	gateway := &fakeSupportGateway{}

	return NewSupportService(gateway, session, validator.New(), discardLogger()), gateway
}

func TestSupportService_Open(t *testing.T) {
	t.Parallel()

	t.Run("prefills name and email from the session", func(t *testing.T) {
		t.Parallel()

		srv, gateway := newSupportFixture(shopperSession(nil))

		ticket, err := srv.Open(context.Background(), usecase.TicketInput{
			Subject:     "Broken kettle",
			Description: "Arrived dented",
		})

		require.NoError(t, err)
		assert.Equal(t, "Asha Rao", ticket.Name)
		assert.Equal(t, "asha@example.com", ticket.Email)
		require.Len(t, gateway.submissions, 1)
	})

	t.Run("explicit contact details win over the session", func(t *testing.T) {
		t.Parallel()

		srv, gateway := newSupportFixture(shopperSession(nil))

		_, err := srv.Open(context.Background(), usecase.TicketInput{
			Name:        "Ravi Rao",
			Email:       "ravi@example.com",
			Subject:     "Gift order",
			Description: "Wrong colour",
		})

		require.NoError(t, err)
		assert.Equal(t, "ravi@example.com", gateway.submissions[0].Email)
	})

	t.Run("signed out with no contact details fails validation", func(t *testing.T) {
		t.Parallel()

		srv, gateway := newSupportFixture(&fakeSession{})

		_, err := srv.Open(context.Background(), usecase.TicketInput{
			Subject:     "Hello",
			Description: "No contact info",
		})

		require.Error(t, err)
		assert.Empty(t, gateway.submissions)
	})
}

func TestSupportService_AuthenticatedSurface(t *testing.T) {
	t.Parallel()

	srv, _ := newSupportFixture(&fakeSession{})

	_, err := srv.Mine(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = srv.Thread(context.Background(), "t1")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = srv.Reply(context.Background(), "t1", "hi")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestSupportService_FAQs(t *testing.T) {
	t.Parallel()

	srv, gateway := newSupportFixture(&fakeSession{})
	gateway.faqs = []*entity.FAQ{
		{ID: "f1", Question: "How long is shipping?", Category: "shipping"},
		{ID: "f2", Question: "Can I return an item?", Category: "returns"},
	}

	all, err := srv.FAQs(context.Background(), "")
	require.NoError(t, err, "faqs are public, no session needed")
	assert.Len(t, all, 2)

	shipping, err := srv.FAQs(context.Background(), "shipping")
	require.NoError(t, err)
	require.Len(t, shipping, 1)
	assert.Equal(t, "f1", shipping[0].ID)
	assert.Equal(t, []string{"", "shipping"}, gateway.faqFilters)
}

func TestSupportService_Reply(t *testing.T) {
	t.Parallel()

	srv, _ := newSupportFixture(shopperSession(nil))

	ticket, err := srv.Reply(context.Background(), "t1", "Any update?")

	require.NoError(t, err)
	require.Len(t, ticket.Replies, 1)
	assert.Equal(t, "Any update?", ticket.Replies[0].Message)

	_, err = srv.Reply(context.Background(), "t1", "")
	require.Error(t, err, "empty reply fails the pre-flight check")
}
