package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse представляет ответ с токеном доступа
type LoginResponse struct {
	Token string `json:"token"` // JWT bearer token
	User  *User  `json:"user,omitempty"`
}

// ResetPasswordRequest запрашивает письмо со ссылкой для сброса пароля
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// ConfirmResetPasswordRequest устанавливает новый пароль по токену из письма
type ConfirmResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// MessageResponse is the generic {"message": "..."} answer
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`   // описание ошибки
	Message string `json:"message,omitempty"` // сообщение для пользователя
}
