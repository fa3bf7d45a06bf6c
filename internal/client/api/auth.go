package api

import (
	"context"
	"net/http"

	"github.com/iudanet/devhub-admin/pkg/api"
)

// Auth endpoints live under /auth/: a 401 there is a wrong credential,
// never a reason to close the session.

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	return call[*api.LoginResponse](ctx, c, http.MethodPost, "/auth/login",
		api.LoginRequest{Email: email, Password: password})
}

// ResetPassword requests a password reset email
func (c *Client) ResetPassword(ctx context.Context, email string) (*api.MessageResponse, error) {
	return call[*api.MessageResponse](ctx, c, http.MethodPost, "/auth/reset-password",
		api.ResetPasswordRequest{Email: email})
}

// ConfirmResetPassword sets a new password using the emailed token
func (c *Client) ConfirmResetPassword(ctx context.Context, token, newPassword string) (*api.MessageResponse, error) {
	return call[*api.MessageResponse](ctx, c, http.MethodPost, "/auth/confirm-reset-password",
		api.ConfirmResetPasswordRequest{Token: token, NewPassword: newPassword})
}
