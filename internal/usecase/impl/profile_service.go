package impl

import (
	"context"
	"log/slog"

	deliverycontext "shopmate/internal/delivery/context"
	"shopmate/internal/domain/entity"
	apperrors "shopmate/internal/domain/errors"
	"shopmate/internal/domain/service"
	"shopmate/internal/usecase"
	"shopmate/internal/validator"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface: account
// maintenance outside the checkout flow.
type profileService struct {
	gateway  service.ProfileGateway
	session  usecase.SessionUsecase
	validate *validator.Validator
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	gateway service.ProfileGateway,
	session usecase.SessionUsecase,
	validate *validator.Validator,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		gateway:  gateway,
		session:  session,
		validate: validate,
		logger:   logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ChangePassword rotates the password. A wrong current password comes back
// as the backend's rejection, verbatim.
func (srv *profileService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	if !srv.session.Current().Authenticated() {
		return apperrors.ErrUnauthorized
	}

	if err := srv.validate.Struct(input); err != nil {
		return err
	}

	if err := srv.gateway.ChangePassword(ctx, input.Current, input.Next); err != nil {
		return errors.Wrap(err, "password change failed")
	}

	srv.log(ctx).Info("password changed")

	return nil
}

// RemoveAddress deletes the delivery address and adopts the canonical
// profile into the session.
func (srv *profileService) RemoveAddress(ctx context.Context) (*entity.User, error) {
	if !srv.session.Current().Authenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := srv.gateway.DeleteAddress(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove address")
	}

	srv.session.AdoptUser(user)

	return user, nil
}

// DeleteAccount removes the account and ends the session locally.
func (srv *profileService) DeleteAccount(ctx context.Context) error {
	if !srv.session.Current().Authenticated() {
		return apperrors.ErrUnauthorized
	}

	if err := srv.gateway.DeleteAccount(ctx); err != nil {
		return errors.Wrap(err, "account deletion failed")
	}

	// The backend already invalidated the account; a failed local logout
	// must not mask that.
	if err := srv.session.Logout(ctx); err != nil {
		srv.log(ctx).Warn("account deleted but local session not fully cleared", slog.Any("error", err))
	}

	return nil
}

// LoginHistory lists the account's login audit trail.
func (srv *profileService) LoginHistory(ctx context.Context) ([]*entity.LoginRecord, error) {
	if !srv.session.Current().Authenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	records, err := srv.gateway.LoginHistory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load login history")
	}

	return records, nil
}
