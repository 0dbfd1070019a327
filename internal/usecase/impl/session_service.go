// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "shopmate/internal/delivery/context"
	"shopmate/internal/domain/entity"
	"shopmate/internal/domain/repository"
	"shopmate/internal/domain/service"
	"shopmate/internal/usecase"
	"shopmate/internal/validator"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	gateway   service.AuthGateway
	tokens    *service.TokenHolder
	store     repository.TokenStore
	inspector service.TokenInspector
	validate  *validator.Validator
	logger    *slog.Logger

	mu      sync.RWMutex
	session entity.Session
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	gateway service.AuthGateway,
	tokens *service.TokenHolder,
	store repository.TokenStore,
	inspector service.TokenInspector,
	validate *validator.Validator,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		gateway:   gateway,
		tokens:    tokens,
		store:     store,
		inspector: inspector,
		validate:  validate,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Restore validates a persisted token with one whoami call. Fail-closed:
// any failure past this point leaves an empty session with the token gone,
// never a half-populated one.
func (srv *sessionService) Restore(ctx context.Context) *entity.Session {
	token, err := srv.store.LoadToken(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			srv.log(ctx).Warn("token snapshot unreadable", slog.Any("error", err))
		}

		return srv.Current()
	}

	// A token already past its expiry claim cannot validate; skip the
	// round-trip and discard it. Tokens without a readable claim still go
	// to the backend, which stays the authority either way.
	if expiry, ok := srv.inspector.ExpiresAt(token); ok && time.Now().After(expiry) {
		srv.log(ctx).Debug("stored token expired, discarding")
		srv.discard(ctx)

		return srv.Current()
	}

	srv.tokens.Set(token)

	user, err := srv.gateway.Me(ctx)
	if err != nil {
		// Single attempt, no retry. Network and 401 are treated alike.
		srv.log(ctx).Debug("stored token rejected", slog.Any("error", err))
		srv.discard(ctx)

		return srv.Current()
	}

	srv.mu.Lock()
	srv.session = entity.Session{Token: token, User: user}
	srv.mu.Unlock()

	srv.log(ctx).Info("session restored", slog.String("email", user.Email))

	return srv.Current()
}

// Login exchanges credentials for a validated session.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*entity.Session, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, err
	}

	token, user, err := srv.gateway.Login(ctx, input.Email, input.Password)
	if err != nil {
		// Session unchanged; the backend's reason travels up verbatim.
		return nil, errors.Wrap(err, "login failed")
	}

	srv.tokens.Set(token)
	if err := srv.store.SaveToken(ctx, token); err != nil {
		// The snapshot is a convenience cache; a failed write costs the
		// user a re-login after restart, nothing more.
		srv.log(ctx).Warn("failed to persist token", slog.Any("error", err))
	}

	srv.mu.Lock()
	srv.session = entity.Session{Token: token, User: user}
	srv.mu.Unlock()

	srv.log(ctx).Info("signed in", slog.String("email", user.Email))

	return srv.Current(), nil
}

// Logout clears the session. Idempotent; in-memory state clears even when
// the snapshot delete fails.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.mu.Lock()
	srv.session = entity.Session{}
	srv.mu.Unlock()
	srv.tokens.Clear()

	if err := srv.store.ClearToken(ctx); err != nil {
		return errors.Wrap(err, "failed to clear token snapshot")
	}

	return nil
}

// Current returns a copy of the live session.
func (srv *sessionService) Current() *entity.Session {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	session := srv.session

	return &session
}

// AdoptUser replaces the cached user with server-canonical data. Ignored
// when signed out: a late profile response must not resurrect a session.
func (srv *sessionService) AdoptUser(user *entity.User) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.session.Token == "" {
		return
	}
	srv.session.User = user
}

// discard drops the held and persisted token.
func (srv *sessionService) discard(ctx context.Context) {
	srv.tokens.Clear()
	if err := srv.store.ClearToken(ctx); err != nil {
		srv.log(ctx).Warn("failed to clear token snapshot", slog.Any("error", err))
	}

	srv.mu.Lock()
	srv.session = entity.Session{}
	srv.mu.Unlock()
}
