package auth

import (
	"context"
)

//go:generate moq -out service_mock.go . Service

// Service defines the authentication operations of the console.
// Login stores the issued token through the session guard; the other
// calls never touch the session except Logout.
type Service interface {
	// Login проверяет ввод, получает токен и сохраняет его
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Logout закрывает сессию по запросу пользователя
	Logout(ctx context.Context)

	// ResetPassword отправляет письмо со ссылкой для сброса пароля
	ResetPassword(ctx context.Context, email string) error

	// ConfirmResetPassword устанавливает новый пароль по токену из письма
	ConfirmResetPassword(ctx context.Context, token, newPassword string) error
}
