package session

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/devhub-admin/internal/client/storage"
)

// memTokenStorage implements storage.TokenStorage in memory
type memTokenStorage struct {
	mu        sync.Mutex
	token     *string
	getErr    error
	deleteErr error
	deletes   int
}

func (m *memTokenStorage) SaveToken(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = &token
	return nil
}

func (m *memTokenStorage) GetToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", m.getErr
	}
	if m.token == nil {
		return "", storage.ErrTokenNotFound
	}
	return *m.token, nil
}

func (m *memTokenStorage) DeleteToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if m.token == nil {
		return storage.ErrTokenNotFound
	}
	m.token = nil
	return nil
}

var errStorageBroken = errors.New("storage broken")

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestGuard создает guard с фиксированными часами
func newTestGuard(t *testing.T, store storage.TokenStorage) *Guard {
	t.Helper()
	g := NewGuard(store, nil, "https://admin.example.com/login", discardLogger())
	g.now = func() time.Time { return fixedNow }
	return g
}

// signToken выпускает HS256 токен с указанными claims
func signToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func tokenExpiringAt(t *testing.T, exp time.Time, role string) string {
	t.Helper()
	return signToken(t, Claims{
		ID:       "user-1",
		Email:    "admin@example.com",
		Username: "admin",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
}

// payloadAndSignature returns token without its header segment
func payloadAndSignature(token string) string {
	return strings.SplitN(token, ".", 2)[1]
}

// withHeader replaces the header segment of token with raw, base64url encoded
func withHeader(token, raw string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(raw)) + "." + payloadAndSignature(token)
}
