package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "shopmate/internal/delivery/context"
	"shopmate/internal/domain/entity"
	apperrors "shopmate/internal/domain/errors"
	"shopmate/internal/domain/service"
	"shopmate/internal/usecase"
	"shopmate/internal/validator"

	"github.com/pkg/errors"
)

// authFlowService implements the AuthFlowUsecase interface. Both OTP flows
// live here because they share the gateway and the step-ordering rule: each
// step is enabled only by the success of the previous one.
type authFlowService struct {
	gateway  service.AuthGateway
	validate *validator.Validator
	logger   *slog.Logger

	mu        sync.Mutex
	regPhase  entity.RegistrationPhase
	regInput  service.RegisterRequest // Retained while AwaitingOTP so resend can re-post it.
	resetStep entity.ResetPhase
	resetMail string
	resetOTP  string
}

// NewAuthFlowService is the constructor for authFlowService.
func NewAuthFlowService(gateway service.AuthGateway, validate *validator.Validator, logger *slog.Logger) usecase.AuthFlowUsecase {
	return &authFlowService{
		gateway:  gateway,
		validate: validate,
		logger:   logger,
	}
}

func (srv *authFlowService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the unverified account and arms the OTP step.
func (srv *authFlowService) Register(ctx context.Context, input usecase.RegisterInput) (string, error) {
	if err := srv.validate.Struct(input); err != nil {
		return "", err
	}

	req := service.RegisterRequest{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	}

	message, err := srv.gateway.Register(ctx, req)
	if err != nil {
		// The flow stays where it was; the user corrects and re-submits.
		return "", errors.Wrap(err, "registration failed")
	}

	srv.mu.Lock()
	srv.regPhase = entity.RegistrationAwaitingOTP
	srv.regInput = req
	srv.mu.Unlock()

	srv.log(ctx).Info("registration submitted", slog.String("email", input.Email))

	return message, nil
}

// VerifyRegistrationOTP proxies the code to the backend.
func (srv *authFlowService) VerifyRegistrationOTP(ctx context.Context, otp string) error {
	srv.mu.Lock()
	if srv.regPhase != entity.RegistrationAwaitingOTP {
		srv.mu.Unlock()

		return apperrors.ErrFlowOrder
	}
	email := srv.regInput.Email
	srv.mu.Unlock()

	if err := srv.gateway.VerifyRegistrationOTP(ctx, email, otp); err != nil {
		// The OTP prompt stays up; a wrong code is not a dead end.
		return errors.Wrap(err, "otp verification failed")
	}

	srv.mu.Lock()
	srv.regPhase = entity.RegistrationVerified
	srv.regInput = service.RegisterRequest{}
	srv.mu.Unlock()

	srv.log(ctx).Info("registration verified", slog.String("email", email))

	return nil
}

// ResendRegistrationOTP re-posts the retained registration payload. The
// backend treats a re-register of an unverified email as a resend.
func (srv *authFlowService) ResendRegistrationOTP(ctx context.Context) (string, error) {
	srv.mu.Lock()
	if srv.regPhase != entity.RegistrationAwaitingOTP {
		srv.mu.Unlock()

		return "", apperrors.ErrFlowOrder
	}
	req := srv.regInput
	srv.mu.Unlock()

	message, err := srv.gateway.Register(ctx, req)
	if err != nil {
		return "", errors.Wrap(err, "otp resend failed")
	}

	return message, nil
}

// RegistrationPhase reports where the registration flow stands.
func (srv *authFlowService) RegistrationPhase() entity.RegistrationPhase {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.regPhase
}

// RequestPasswordReset starts (or restarts) the reset flow.
func (srv *authFlowService) RequestPasswordReset(ctx context.Context, email string) error {
	if err := srv.validate.Var(email, "required,email"); err != nil {
		return err
	}

	if err := srv.gateway.RequestPasswordReset(ctx, email); err != nil {
		return errors.Wrap(err, "password reset request failed")
	}

	srv.mu.Lock()
	srv.resetStep = entity.ResetOTPRequested
	srv.resetMail = email
	srv.resetOTP = ""
	srv.mu.Unlock()

	srv.log(ctx).Info("password reset requested", slog.String("email", email))

	return nil
}

// VerifyPasswordResetOTP checks the code; the backend does not consume it,
// so it is retained for the final reset call.
func (srv *authFlowService) VerifyPasswordResetOTP(ctx context.Context, otp string) error {
	srv.mu.Lock()
	if srv.resetStep != entity.ResetOTPRequested {
		srv.mu.Unlock()

		return apperrors.ErrFlowOrder
	}
	email := srv.resetMail
	srv.mu.Unlock()

	if err := srv.gateway.VerifyPasswordResetOTP(ctx, email, otp); err != nil {
		return errors.Wrap(err, "reset otp verification failed")
	}

	srv.mu.Lock()
	srv.resetStep = entity.ResetOTPVerified
	srv.resetOTP = otp
	srv.mu.Unlock()

	return nil
}

// ResetPassword sets the new password and returns the flow to Idle.
func (srv *authFlowService) ResetPassword(ctx context.Context, newPassword string) error {
	if err := srv.validate.Var(newPassword, "required,min=6"); err != nil {
		return err
	}

	srv.mu.Lock()
	if srv.resetStep != entity.ResetOTPVerified {
		srv.mu.Unlock()

		return apperrors.ErrFlowOrder
	}
	email, otp := srv.resetMail, srv.resetOTP
	srv.mu.Unlock()

	if err := srv.gateway.ResetPassword(ctx, email, otp, newPassword); err != nil {
		return errors.Wrap(err, "password reset failed")
	}

	srv.mu.Lock()
	srv.resetStep = entity.ResetIdle
	srv.resetMail = ""
	srv.resetOTP = ""
	srv.mu.Unlock()

	srv.log(ctx).Info("password reset completed", slog.String("email", email))

	return nil
}

// PasswordResetPhase reports where the reset flow stands.
func (srv *authFlowService) PasswordResetPhase() entity.ResetPhase {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.resetStep
}
