package api

import (
	"context"

	"shopmate/internal/domain/entity"
	"shopmate/internal/domain/service"
)

type authGateway struct {
	client *Client
}

// NewAuthGateway is the constructor for the auth gateway.
func NewAuthGateway(client *Client) service.AuthGateway {
	return &authGateway{client: client}
}

type registerResponse struct {
	Message string `json:"message"`
}

// Register creates an unverified account; the backend emails the OTP.
func (g *authGateway) Register(ctx context.Context, req service.RegisterRequest) (string, error) {
	var resp registerResponse
	if err := g.client.post(ctx, "/api/auth/register", req, &resp, false); err != nil {
		return "", err
	}

	return resp.Message, nil
}

type otpRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// VerifyRegistrationOTP proxies the backend's accept/reject of the code.
func (g *authGateway) VerifyRegistrationOTP(ctx context.Context, email, otp string) error {
	return g.client.post(ctx, "/api/auth/verify-otp", otpRequest{Email: email, OTP: otp}, nil, false)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string    `json:"access_token"`
	User        *wireUser `json:"user"`
	Message     string    `json:"message"`
}

// Login exchanges credentials for a bearer token and the canonical user.
func (g *authGateway) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	var resp loginResponse
	if err := g.client.post(ctx, "/api/auth/login", loginRequest{Email: email, Password: password}, &resp, false); err != nil {
		return "", nil, err
	}

	return resp.AccessToken, resp.User.toEntity(), nil
}

// Me validates the held token and returns the current user.
func (g *authGateway) Me(ctx context.Context) (*entity.User, error) {
	var user wireUser
	if err := g.client.get(ctx, "/api/auth/me", nil, &user, true); err != nil {
		return nil, err
	}

	return user.toEntity(), nil
}

type emailRequest struct {
	Email string `json:"email"`
}

// RequestPasswordReset triggers the reset OTP email.
func (g *authGateway) RequestPasswordReset(ctx context.Context, email string) error {
	return g.client.post(ctx, "/api/auth/forgot-password/request", emailRequest{Email: email}, nil, false)
}

// VerifyPasswordResetOTP checks the reset OTP without consuming it.
func (g *authGateway) VerifyPasswordResetOTP(ctx context.Context, email, otp string) error {
	return g.client.post(ctx, "/api/auth/forgot-password/verify", otpRequest{Email: email, OTP: otp}, nil, false)
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

// ResetPassword sets a new password after a verified reset OTP.
func (g *authGateway) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	return g.client.post(ctx, "/api/auth/forgot-password/reset", resetPasswordRequest{
		Email:       email,
		OTP:         otp,
		NewPassword: newPassword,
	}, nil, false)
}
