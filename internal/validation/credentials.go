package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// EmailPattern определяет допустимый формат email
// local@domain.tld без пробелов
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	// MaxEmailLen максимальная длина email
	MaxEmailLen = 254
	// MinNewPasswordLen минимальная длина нового пароля
	MinNewPasswordLen = 8
)

// ValidateEmail проверяет, что email соответствует требованиям
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email must look like name@example.com")
	}

	return nil
}

// ValidatePassword проверяет пароль при входе
// Сервер сам решает, верен ли пароль; здесь только пустое значение
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}

// ValidateNewPassword проверяет новый пароль при сбросе
// Минимум 8 символов, без пробелов по краям
func ValidateNewPassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if strings.TrimSpace(password) != password {
		return fmt.Errorf("password must not start or end with spaces")
	}

	if len(password) < MinNewPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinNewPasswordLen)
	}

	return nil
}
