package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"shopmate/internal/domain/entity"
	"shopmate/internal/domain/repository"
	"shopmate/internal/domain/service"
	"shopmate/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTokenStore is an in-memory TokenStore with call counters.
type fakeTokenStore struct {
	token  string
	has    bool
	saves  int
	clears int
	failIO bool
}

func (s *fakeTokenStore) LoadToken(context.Context) (string, error) {
	if !s.has {
		return "", repository.ErrSnapshotNotFound
	}

	return s.token, nil
}

func (s *fakeTokenStore) SaveToken(_ context.Context, token string) error {
	s.saves++
	if s.failIO {
		return errTestIO
	}
	s.token, s.has = token, true

	return nil
}

func (s *fakeTokenStore) ClearToken(context.Context) error {
	s.clears++
	s.token, s.has = "", false

	return nil
}

// fakeCartStore is an in-memory CartSnapshotStore.
type fakeCartStore struct {
	cart   *entity.Cart
	saves  int
	clears int
}

func (s *fakeCartStore) LoadCart(context.Context) *entity.Cart {
	if s.cart == nil {
		return &entity.Cart{}
	}

	return s.cart
}

func (s *fakeCartStore) SaveCart(_ context.Context, cart *entity.Cart) error {
	s.saves++
	items := make([]entity.CartItem, len(cart.Items))
	copy(items, cart.Items)
	s.cart = &entity.Cart{Items: items}

	return nil
}

func (s *fakeCartStore) ClearCart(context.Context) error {
	s.clears++
	s.cart = &entity.Cart{}

	return nil
}

// fakeInspector reports a fixed expiry claim.
type fakeInspector struct {
	expiry time.Time
	ok     bool
}

func (i *fakeInspector) ExpiresAt(string) (time.Time, bool) {
	return i.expiry, i.ok
}

// fakeAuthGateway routes each method to an optional stub and counts calls.
type fakeAuthGateway struct {
	registerFn func(req service.RegisterRequest) (string, error)
	verifyFn   func(email, otp string) error
	loginFn    func(email, password string) (string, *entity.User, error)
	meFn       func() (*entity.User, error)
	resetReqFn func(email string) error
	resetVerFn func(email, otp string) error
	resetFn    func(email, otp, newPassword string) error

	registerCalls int
	meCalls       int
}

func (g *fakeAuthGateway) Register(_ context.Context, req service.RegisterRequest) (string, error) {
	g.registerCalls++
	if g.registerFn == nil {
		return "ok", nil
	}

	return g.registerFn(req)
}

func (g *fakeAuthGateway) VerifyRegistrationOTP(_ context.Context, email, otp string) error {
	if g.verifyFn == nil {
		return nil
	}

	return g.verifyFn(email, otp)
}

func (g *fakeAuthGateway) Login(_ context.Context, email, password string) (string, *entity.User, error) {
	if g.loginFn == nil {
		return "", nil, errTestIO
	}

	return g.loginFn(email, password)
}

func (g *fakeAuthGateway) Me(context.Context) (*entity.User, error) {
	g.meCalls++
	if g.meFn == nil {
		return nil, errTestIO
	}

	return g.meFn()
}

func (g *fakeAuthGateway) RequestPasswordReset(_ context.Context, email string) error {
	if g.resetReqFn == nil {
		return nil
	}

	return g.resetReqFn(email)
}

func (g *fakeAuthGateway) VerifyPasswordResetOTP(_ context.Context, email, otp string) error {
	if g.resetVerFn == nil {
		return nil
	}

	return g.resetVerFn(email, otp)
}

func (g *fakeAuthGateway) ResetPassword(_ context.Context, email, otp, newPassword string) error {
	if g.resetFn == nil {
		return nil
	}

	return g.resetFn(email, otp, newPassword)
}

// fakeProfileGateway covers the profile surface.
type fakeProfileGateway struct {
	getFn    func() (*entity.User, error)
	updateFn func(update service.ProfileUpdate) (*entity.User, error)

	getCalls    int
	updateCalls int
}

func (g *fakeProfileGateway) GetProfile(context.Context) (*entity.User, error) {
	g.getCalls++
	if g.getFn == nil {
		return nil, errTestIO
	}

	return g.getFn()
}

func (g *fakeProfileGateway) UpdateProfile(_ context.Context, update service.ProfileUpdate) (*entity.User, error) {
	g.updateCalls++
	if g.updateFn == nil {
		return nil, errTestIO
	}

	return g.updateFn(update)
}

func (g *fakeProfileGateway) ChangePassword(_ context.Context, _, _ string) error {
	return nil
}

func (g *fakeProfileGateway) DeleteAddress(context.Context) (*entity.User, error) {
	return nil, errTestIO
}

func (g *fakeProfileGateway) DeleteAccount(context.Context) error {
	return nil
}

func (g *fakeProfileGateway) LoginHistory(context.Context) ([]*entity.LoginRecord, error) {
	return nil, nil
}

// fakeOrderGateway records the submissions it sees.
type fakeOrderGateway struct {
	placeFn func(submission service.OrderSubmission) (*entity.Order, error)

	placeCalls  int
	submissions []service.OrderSubmission
}

func (g *fakeOrderGateway) PlaceOrder(_ context.Context, submission service.OrderSubmission) (*entity.Order, error) {
	g.placeCalls++
	g.submissions = append(g.submissions, submission)
	if g.placeFn == nil {
		return &entity.Order{ID: "order-1", TotalAmount: submission.TotalAmount, Status: entity.OrderPending}, nil
	}

	return g.placeFn(submission)
}

func (g *fakeOrderGateway) ListOrders(context.Context) ([]*entity.Order, error) {
	return nil, nil
}

func (g *fakeOrderGateway) CancelOrder(_ context.Context, orderID string) (*entity.Order, error) {
	return &entity.Order{ID: orderID, Status: entity.OrderCancelled}, nil
}

// fakePaymentGateway returns canned status responses in order.
type fakePaymentGateway struct {
	session  *entity.CheckoutSession
	statuses []statusReply

	statusCalls int
}

type statusReply struct {
	status *entity.PaymentStatus
	err    error
}

func (g *fakePaymentGateway) CreateCheckoutSession(_ context.Context, _ []service.CheckoutItem, _ string) (*entity.CheckoutSession, error) {
	if g.session == nil {
		return nil, errTestIO
	}

	return g.session, nil
}

func (g *fakePaymentGateway) GetPaymentStatus(_ context.Context, _ string) (*entity.PaymentStatus, error) {
	i := g.statusCalls
	g.statusCalls++
	if i >= len(g.statuses) {
		return &entity.PaymentStatus{PaymentStatus: "unpaid", Status: "open"}, nil
	}

	return g.statuses[i].status, g.statuses[i].err
}

// fakeSession is a settable SessionUsecase for services that only read the
// current session and adopt canonical users into it.
type fakeSession struct {
	session entity.Session
	adopted []*entity.User
}

func (s *fakeSession) Restore(context.Context) *entity.Session { return s.Current() }

func (s *fakeSession) Login(context.Context, usecase.LoginInput) (*entity.Session, error) {
	return s.Current(), nil
}

func (s *fakeSession) Logout(context.Context) error {
	s.session = entity.Session{}

	return nil
}

func (s *fakeSession) Current() *entity.Session {
	session := s.session

	return &session
}

func (s *fakeSession) AdoptUser(user *entity.User) {
	s.adopted = append(s.adopted, user)
	s.session.User = user
}

var errTestIO = fakeError("boom")

type fakeError string

func (e fakeError) Error() string { return string(e) }

func pendingStatus() *entity.PaymentStatus {
	return &entity.PaymentStatus{PaymentStatus: "unpaid", Status: "open"}
}

func paidStatus() *entity.PaymentStatus {
	return &entity.PaymentStatus{PaymentStatus: "paid", Status: "complete", Amount: 250.50, Currency: "inr"}
}
