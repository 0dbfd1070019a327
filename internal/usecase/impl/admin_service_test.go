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

// fakeAdminGateway backs the admin surface with a tiny in-memory catalog.
type fakeAdminGateway struct {
	products []*entity.Product
	users    []*entity.User
	faqs     []*entity.FAQ

	createCalls int
	deleteCalls int
	faqCalls    int
}

func (g *fakeAdminGateway) DashboardStats(context.Context) (*service.DashboardStats, error) {
	return &service.DashboardStats{
		TotalProducts: len(g.products),
		TotalUsers:    len(g.users),
	}, nil
}

func (g *fakeAdminGateway) CreateProduct(_ context.Context, input service.ProductInput) (*entity.Product, error) {
	g.createCalls++
	product := &entity.Product{ID: "p-new", Name: input.Name, Price: input.Price}
	g.products = append(g.products, product)

	return product, nil
}

func (g *fakeAdminGateway) UpdateProduct(_ context.Context, productID string, input service.ProductInput) (*entity.Product, error) {
	for _, p := range g.products {
		if p.ID == productID {
			p.Name, p.Price = input.Name, input.Price

			return p, nil
		}
	}

	return nil, apperrors.ErrNotFound
}

func (g *fakeAdminGateway) DeleteProduct(_ context.Context, productID string) error {
	g.deleteCalls++
	for i, p := range g.products {
		if p.ID == productID {
			g.products = append(g.products[:i], g.products[i+1:]...)

			return nil
		}
	}

	return apperrors.ErrNotFound
}

func (g *fakeAdminGateway) ListUsers(context.Context) ([]*entity.User, error) {
	return g.users, nil
}

func (g *fakeAdminGateway) DeleteUser(_ context.Context, userID string) error {
	for i, u := range g.users {
		if u.ID == userID {
			g.users = append(g.users[:i], g.users[i+1:]...)

			return nil
		}
	}

	return apperrors.ErrNotFound
}

func (g *fakeAdminGateway) ListOrders(context.Context) ([]*entity.Order, error) {
	return nil, nil
}

func (g *fakeAdminGateway) UpdateOrderStatus(_ context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	return &entity.Order{ID: orderID, Status: status}, nil
}

func (g *fakeAdminGateway) ListTickets(context.Context) ([]*entity.SupportTicket, error) {
	return nil, nil
}

func (g *fakeAdminGateway) UpdateTicketStatus(_ context.Context, ticketID string, status entity.TicketStatus) (*entity.SupportTicket, error) {
	return &entity.SupportTicket{ID: ticketID, Status: status}, nil
}

func (g *fakeAdminGateway) ReplyTicket(_ context.Context, ticketID, _ string) (*entity.SupportTicket, error) {
	return &entity.SupportTicket{ID: ticketID}, nil
}

func (g *fakeAdminGateway) CreateFAQ(_ context.Context, input service.FAQInput) (*entity.FAQ, error) {
	g.faqCalls++
	faq := &entity.FAQ{ID: "f-new", Question: input.Question, Answer: input.Answer, Category: input.Category}
	g.faqs = append(g.faqs, faq)

	return faq, nil
}

// fakeCatalogGateway serves the same in-memory catalog read-only.
type fakeCatalogGateway struct {
	admin     *fakeAdminGateway
	listCalls int
}

func (g *fakeCatalogGateway) ListProducts(context.Context, service.ProductQuery) ([]*entity.Product, error) {
	g.listCalls++

	return g.admin.products, nil
}

func (g *fakeCatalogGateway) GetProduct(_ context.Context, productID string) (*entity.Product, error) {
	for _, p := range g.admin.products {
		if p.ID == productID {
			return p, nil
		}
	}

	return nil, apperrors.ErrNotFound
}

func (g *fakeCatalogGateway) ListRatings(context.Context, string) ([]*entity.Rating, error) {
	return nil, nil
}

func (g *fakeCatalogGateway) SubmitRating(_ context.Context, productID string, stars int, comment string) (*entity.Rating, error) {
	return &entity.Rating{ProductID: productID, Stars: stars, Comment: comment}, nil
}

// fakeFAQGateway serves the admin fake's FAQ list through the public port.
type fakeFAQGateway struct {
	fakeSupportGateway
	admin *fakeAdminGateway
}

func (g *fakeFAQGateway) ListFAQs(context.Context, string) ([]*entity.FAQ, error) {
	return g.admin.faqs, nil
}

func adminSession() *fakeSession {
	return &fakeSession{session: entity.Session{
		Token: "tok",
		User:  &entity.User{ID: "a1", Email: "admin@example.com", Role: entity.RoleAdmin},
	}}
}

func newAdminFixture(session *fakeSession) (usecase.AdminUsecase, *fakeAdminGateway, *fakeCatalogGateway) {
	gateway := &fakeAdminGateway{
		products: []*entity.Product{{ID: "p1", Name: "existing", Price: 10}},
		users:    []*entity.User{{ID: "u1"}, {ID: "u2"}},
	}
	catalog := &fakeCatalogGateway{admin: gateway}
	support := &fakeFAQGateway{admin: gateway}

	return NewAdminService(gateway, catalog, support, session, validator.New(), discardLogger()), gateway, catalog
}

func TestAdminService_RoleGate(t *testing.T) {
	t.Parallel()

	t.Run("signed out", func(t *testing.T) {
		t.Parallel()

		srv, gateway, _ := newAdminFixture(&fakeSession{})

		_, err := srv.Dashboard(context.Background())

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		assert.Zero(t, gateway.createCalls)
	})

	t.Run("shopper role", func(t *testing.T) {
		t.Parallel()

		srv, _, _ := newAdminFixture(shopperSession(nil))

		_, err := srv.Dashboard(context.Background())
		assert.ErrorIs(t, err, apperrors.ErrAdminRequired)

		_, err = srv.DeleteProduct(context.Background(), "p1")
		assert.ErrorIs(t, err, apperrors.ErrAdminRequired)
	})
}

func TestAdminService_ProductLifecycle(t *testing.T) {
	t.Parallel()

	srv, gateway, catalog := newAdminFixture(adminSession())

	products, err := srv.CreateProduct(context.Background(), usecase.ProductEditInput{
		Name:        "Masala Chai",
		Price:       249,
		Description: "Loose leaf blend",
		Category:    "grocery",
		Stock:       25,
	})

	require.NoError(t, err)
	assert.Len(t, products, 2, "mutation returns the refreshed catalog")
	assert.Equal(t, 1, gateway.createCalls)
	assert.Equal(t, 1, catalog.listCalls)

	products, err = srv.DeleteProduct(context.Background(), "p1")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p-new", products[0].ID)
}

func TestAdminService_InvalidProductNeverReachesGateway(t *testing.T) {
	t.Parallel()

	srv, gateway, _ := newAdminFixture(adminSession())

	_, err := srv.CreateProduct(context.Background(), usecase.ProductEditInput{Name: "x", Price: -1})

	require.Error(t, err)
	assert.Zero(t, gateway.createCalls)
}

func TestAdminService_PublishFAQ(t *testing.T) {
	t.Parallel()

	srv, gateway, _ := newAdminFixture(adminSession())

	faqs, err := srv.PublishFAQ(context.Background(), usecase.FAQEditInput{
		Question: "How long is shipping?",
		Answer:   "3-5 business days.",
		Category: "shipping",
	})

	require.NoError(t, err)
	require.Len(t, faqs, 1, "mutation returns the refreshed list")
	assert.Equal(t, "f-new", faqs[0].ID)
	assert.Equal(t, 1, gateway.faqCalls)

	_, err = srv.PublishFAQ(context.Background(), usecase.FAQEditInput{Question: "No answer"})
	require.Error(t, err)
	assert.Equal(t, 1, gateway.faqCalls, "invalid input never reaches the gateway")
}

func TestAdminService_PublishFAQRequiresAdmin(t *testing.T) {
	t.Parallel()

	srv, gateway, _ := newAdminFixture(shopperSession(nil))

	_, err := srv.PublishFAQ(context.Background(), usecase.FAQEditInput{
		Question: "Q", Answer: "A", Category: "general",
	})

	assert.ErrorIs(t, err, apperrors.ErrAdminRequired)
	assert.Zero(t, gateway.faqCalls)
}

func TestAdminService_DeleteUserRefreshesList(t *testing.T) {
	t.Parallel()

	srv, _, _ := newAdminFixture(adminSession())

	users, err := srv.DeleteUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u2", users[0].ID)
}
