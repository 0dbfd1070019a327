package api

import (
	"context"

	"shopmate/internal/domain/entity"
	"shopmate/internal/domain/service"
)

type profileGateway struct {
	client *Client
}

// NewProfileGateway is the constructor for the profile gateway.
func NewProfileGateway(client *Client) service.ProfileGateway {
	return &profileGateway{client: client}
}

// GetProfile fetches the canonical profile.
func (g *profileGateway) GetProfile(ctx context.Context) (*entity.User, error) {
	var user wireUser
	if err := g.client.get(ctx, "/api/users/profile", nil, &user, true); err != nil {
		return nil, err
	}

	return user.toEntity(), nil
}

type profileUpdateRequest struct {
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	MobileNumber    string       `json:"mobile_number,omitempty"`
	DeliveryAddress *wireAddress `json:"delivery_address,omitempty"`
}

// UpdateProfile replaces the profile and returns the server-normalized user.
func (g *profileGateway) UpdateProfile(ctx context.Context, update service.ProfileUpdate) (*entity.User, error) {
	req := profileUpdateRequest{
		Name:            update.Name,
		Email:           update.Email,
		MobileNumber:    update.MobileNumber,
		DeliveryAddress: toWireAddress(update.DeliveryAddress),
	}

	var user wireUser
	if err := g.client.put(ctx, "/api/users/profile", req, &user); err != nil {
		return nil, err
	}

	return user.toEntity(), nil
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword rotates the account password.
func (g *profileGateway) ChangePassword(ctx context.Context, current, next string) error {
	return g.client.put(ctx, "/api/users/change-password", changePasswordRequest{
		CurrentPassword: current,
		NewPassword:     next,
	}, nil)
}

// DeleteAddress removes the delivery address.
func (g *profileGateway) DeleteAddress(ctx context.Context) (*entity.User, error) {
	var user wireUser
	if err := g.client.delete(ctx, "/api/users/delete-address", &user); err != nil {
		return nil, err
	}

	return user.toEntity(), nil
}

// DeleteAccount permanently removes the account.
func (g *profileGateway) DeleteAccount(ctx context.Context) error {
	return g.client.delete(ctx, "/api/users/delete-account", nil)
}

// LoginHistory lists the account's login audit trail.
func (g *profileGateway) LoginHistory(ctx context.Context) ([]*entity.LoginRecord, error) {
	var records []*entity.LoginRecord
	if err := g.client.get(ctx, "/api/users/login-history", nil, &records, true); err != nil {
		return nil, err
	}

	return records, nil
}
