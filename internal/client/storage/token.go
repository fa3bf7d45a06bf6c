package storage

import (
	"context"
)

// TokenStorage is the single persistent slot holding the bearer token.
// It stores the token as-is: no validation happens at write time.
type TokenStorage interface {
	// SaveToken overwrites the slot with token
	SaveToken(ctx context.Context, token string) error

	// GetToken returns the stored token
	// Returns ErrTokenNotFound if the slot is empty
	GetToken(ctx context.Context) (string, error)

	// DeleteToken clears the slot
	// Returns ErrTokenNotFound if the slot is already empty
	DeleteToken(ctx context.Context) error
}
