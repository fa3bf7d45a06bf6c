package auth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/devhub-admin/internal/client/api"
	"github.com/iudanet/devhub-admin/internal/client/notify"
	"github.com/iudanet/devhub-admin/internal/client/session"
	"github.com/iudanet/devhub-admin/internal/client/storage/boltdb"
	pkgapi "github.com/iudanet/devhub-admin/pkg/api"
)

type testEnv struct {
	svc      Service
	guard    *session.Guard
	notifier *notify.NotifierMock
	server   *httptest.Server
}

func newTestEnv(t *testing.T, handler http.HandlerFunc) *testEnv {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := &notify.NotifierMock{NotifyFunc: func(notify.Level, string) {}}
	guard := session.NewGuard(store, notifier, "/login", logger)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := api.NewClient(server.URL, guard, time.Second, logger)
	return &testEnv{
		svc:      NewService(client, guard, notifier, logger),
		guard:    guard,
		notifier: notifier,
		server:   server,
	}
}

func issueToken(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, session.Claims{
		ID:       "u-1",
		Email:    "root@devhub.io",
		Username: "root",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour).Truncate(time.Second)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestLogin_Success(t *testing.T) {
	token := issueToken(t, session.RoleAdmin)
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)

		var req pkgapi.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "root@devhub.io", req.Email)
		assert.Equal(t, "s3cret", req.Password)

		_ = json.NewEncoder(w).Encode(pkgapi.LoginResponse{Token: token})
	})
	ctx := context.Background()

	result, err := env.svc.Login(ctx, "  root@devhub.io ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "root", result.Username)
	assert.Equal(t, "u-1", result.UserID)
	assert.True(t, result.IsAdmin)
	assert.False(t, result.ExpiresAt.IsZero())

	assert.Equal(t, token, env.guard.Token(ctx))
	assert.True(t, env.guard.IsAdmin(ctx))

	calls := env.notifier.NotifyCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, notify.LevelSuccess, calls[0].Level)
}

func TestLogin_NonAdminKeepsToken(t *testing.T) {
	token := issueToken(t, "user")
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(pkgapi.LoginResponse{Token: token})
	})

	result, err := env.svc.Login(context.Background(), "root@devhub.io", "pw")
	require.NoError(t, err)
	assert.False(t, result.IsAdmin)
	assert.Equal(t, "user", result.Role)
	assert.True(t, env.guard.IsAuthenticated(context.Background()))
}

func TestLogin_Validation(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent")
	})

	tests := []struct {
		name     string
		email    string
		password string
		errMsg   string
	}{
		{name: "empty email", email: "", password: "pw", errMsg: "invalid email"},
		{name: "bad email", email: "root", password: "pw", errMsg: "invalid email"},
		{name: "empty password", email: "root@devhub.io", password: "", errMsg: "invalid password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.Login(context.Background(), tt.email, tt.password)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Invalid credentials"}`)
	})

	_, err := env.svc.Login(context.Background(), "root@devhub.io", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.Equal(t, http.StatusUnauthorized, api.StatusCode(err))

	calls := env.notifier.NotifyCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, notify.LevelError, calls[0].Level)
	assert.Equal(t, "Invalid credentials", calls[0].Message)
}

func TestLogin_ServerUnreachable(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {})
	env.server.Close()

	_, err := env.svc.Login(context.Background(), "root@devhub.io", "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnreachable)
}

func TestLogin_MalformedToken(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty token", body: `{"token":""}`},
		{name: "garbage token", body: `{"token":"abc"}`},
		{name: "no body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := env.svc.Login(context.Background(), "root@devhub.io", "pw")
			assert.ErrorIs(t, err, ErrMalformedToken)
			assert.Equal(t, "", env.guard.Token(context.Background()))
		})
	}
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx := context.Background()
	require.NoError(t, env.guard.SetToken(ctx, issueToken(t, session.RoleAdmin)))

	var reason string
	env.guard.OnLogout(func(e session.LogoutEvent) { reason = e.Reason })

	env.svc.Logout(ctx)
	assert.Equal(t, session.ReasonManualLogout, reason)
	assert.False(t, env.guard.IsAuthenticated(ctx))
}

func TestResetPassword(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/reset-password", r.URL.Path)
		_, _ = io.WriteString(w, `{"message":"sent"}`)
	})

	require.NoError(t, env.svc.ResetPassword(context.Background(), "ann@devhub.io"))
	assert.Error(t, env.svc.ResetPassword(context.Background(), "not-an-email"))
}

func TestConfirmResetPassword(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		var req pkgapi.ConfirmResetPasswordRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Token != "good" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":"Token invalid or expired"}`)
			return
		}
		_, _ = io.WriteString(w, `{"message":"ok"}`)
	})
	ctx := context.Background()

	require.NoError(t, env.svc.ConfirmResetPassword(ctx, "good", "brand-new-pass"))

	err := env.svc.ConfirmResetPassword(ctx, "stale", "brand-new-pass")
	require.Error(t, err)
	assert.Equal(t, "Token invalid or expired", err.Error())

	assert.Error(t, env.svc.ConfirmResetPassword(ctx, "", "brand-new-pass"))
	assert.Error(t, env.svc.ConfirmResetPassword(ctx, "good", "short"))
}
