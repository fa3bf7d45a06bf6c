// Package auth implements the login flow on top of the session guard.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/iudanet/devhub-admin/internal/client/api"
	"github.com/iudanet/devhub-admin/internal/client/notify"
	"github.com/iudanet/devhub-admin/internal/client/session"
	"github.com/iudanet/devhub-admin/internal/validation"
)

var (
	// ErrServerUnreachable is returned when the server could not be contacted
	ErrServerUnreachable = errors.New("could not connect to the server")
	// ErrMalformedToken is returned when the server issued an unreadable token
	ErrMalformedToken = errors.New("server returned a malformed token")
)

// LoginResult содержит результат входа
type LoginResult struct {
	ExpiresAt time.Time
	UserID    string
	Username  string
	Email     string
	Role      string
	IsAdmin   bool
}

// service предоставляет функции авторизации
type service struct {
	apiClient *api.Client
	guard     *session.Guard
	notifier  notify.Notifier
	logger    *slog.Logger
}

// Compile-time check
var _ Service = (*service)(nil)

// NewService создает новый сервис авторизации
func NewService(apiClient *api.Client, guard *session.Guard, notifier notify.Notifier, logger *slog.Logger) Service {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		apiClient: apiClient,
		guard:     guard,
		notifier:  notifier,
		logger:    logger,
	}
}

// Login выполняет аутентификацию пользователя
func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)

	// Валидация входных данных
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, email, password)
	if err != nil {
		err = classify(err)
		s.notifier.Notify(notify.LevelError, err.Error())
		return nil, err
	}
	if resp == nil || resp.Token == "" {
		return nil, ErrMalformedToken
	}

	claims, ok := s.guard.ParseToken(resp.Token)
	if !ok {
		return nil, ErrMalformedToken
	}

	if err := s.guard.SetToken(ctx, resp.Token); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("logged in", "username", claims.Username, "role", claims.Role)
	s.notifier.Notify(notify.LevelSuccess, "Logged in successfully")

	result := &LoginResult{
		UserID:   claims.ID,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
		IsAdmin:  claims.Role == session.RoleAdmin,
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}
	// Ответ сервера дополняет то, чего нет в claims
	if resp.User != nil {
		if result.Username == "" {
			result.Username = resp.User.Username
		}
		if result.Email == "" {
			result.Email = resp.User.Email
		}
		if result.UserID == "" {
			result.UserID = resp.User.ID
		}
	}

	return result, nil
}

// Logout выполняет выход из системы
func (s *service) Logout(ctx context.Context) {
	s.guard.Logout(ctx, session.ReasonManualLogout)
}

// ResetPassword requests a reset link for email
func (s *service) ResetPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	if _, err := s.apiClient.ResetPassword(ctx, email); err != nil {
		err = classify(err)
		s.notifier.Notify(notify.LevelError, "Failed to send reset link: "+err.Error())
		return err
	}

	s.notifier.Notify(notify.LevelSuccess, "Reset link sent")
	return nil
}

// ConfirmResetPassword sets a new password with the emailed token
func (s *service) ConfirmResetPassword(ctx context.Context, token, newPassword string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("reset token cannot be empty")
	}
	if err := validation.ValidateNewPassword(newPassword); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	if _, err := s.apiClient.ConfirmResetPassword(ctx, token, newPassword); err != nil {
		err = classify(err)
		s.notifier.Notify(notify.LevelError, "Failed to update password: "+err.Error())
		return err
	}

	s.notifier.Notify(notify.LevelSuccess, "Password updated successfully")
	return nil
}

// classify оставляет ответы сервера как есть, сетевые ошибки
// превращает в ErrServerUnreachable
func classify(err error) error {
	if api.StatusCode(err) != 0 || errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrServerUnreachable, err)
}
