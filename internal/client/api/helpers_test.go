package api

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

	"github.com/iudanet/devhub-admin/internal/client/session"
	"github.com/iudanet/devhub-admin/internal/client/storage/boltdb"
)

// logoutRecorder собирает события выхода
type logoutRecorder struct {
	mu     sync.Mutex
	events []session.LogoutEvent
}

func (r *logoutRecorder) handle(e session.LogoutEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *logoutRecorder) reasons() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Reason)
	}
	return out
}

type testEnv struct {
	client  *Client
	guard   *session.Guard
	server  *httptest.Server
	logouts *logoutRecorder
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEnv поднимает httptest сервер и клиент с guard поверх boltdb
func newTestEnv(t *testing.T, handler http.HandlerFunc) *testEnv {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	guard := session.NewGuard(store, nil, "/login", discardLogger())
	rec := &logoutRecorder{}
	guard.OnLogout(rec.handle)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &testEnv{
		client:  NewClient(server.URL, guard, time.Second, discardLogger()),
		guard:   guard,
		server:  server,
		logouts: rec,
	}
}

func mintToken(t *testing.T, exp time.Time, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, session.Claims{
		ID:       "u1",
		Username: "root",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

// login кладет действующий admin токен
func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	token := mintToken(t, time.Now().Add(time.Hour), session.RoleAdmin)
	require.NoError(t, e.guard.SetToken(context.Background(), token))
	return token
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
