package admin

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/devhub-admin/internal/client/api"
	"github.com/iudanet/devhub-admin/internal/client/notify"
	"github.com/iudanet/devhub-admin/internal/client/session"
	"github.com/iudanet/devhub-admin/internal/client/storage/boltdb"
)

type testEnv struct {
	client   *api.Client
	guard    *session.Guard
	store    *boltdb.Storage
	notifier *notify.NotifierMock

	mu      sync.Mutex
	logouts []string
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEnv поднимает сервер и авторизованный клиент
func newTestEnv(t *testing.T, handler http.HandlerFunc) *testEnv {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "admin.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	env := &testEnv{
		store:    store,
		notifier: &notify.NotifierMock{NotifyFunc: func(notify.Level, string) {}},
	}
	env.guard = session.NewGuard(store, nil, "/login", discardLogger())
	env.guard.OnLogout(func(e session.LogoutEvent) {
		env.mu.Lock()
		defer env.mu.Unlock()
		env.logouts = append(env.logouts, e.Reason)
	})
	env.client = api.NewClient(server.URL, env.guard, time.Second, discardLogger())

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, session.Claims{
		ID:       "admin-1",
		Username: "root",
		Role:     session.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	require.NoError(t, env.guard.SetToken(context.Background(), token))

	return env
}

func (e *testEnv) logoutReasons() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.logouts...)
}

// messages возвращает уведомления указанного уровня
func (e *testEnv) messages(level notify.Level) []string {
	var out []string
	for _, c := range e.notifier.NotifyCalls() {
		if c.Level == level {
			out = append(out, c.Message)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
