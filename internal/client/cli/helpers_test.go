package cli

import (
	"bytes"
	"context"
	"fmt"
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
	"github.com/iudanet/devhub-admin/internal/client/auth"
	"github.com/iudanet/devhub-admin/internal/client/iocli"
	"github.com/iudanet/devhub-admin/internal/client/session"
	"github.com/iudanet/devhub-admin/internal/client/storage/boltdb"
	"github.com/iudanet/devhub-admin/internal/client/storage/sqlite"
)

// terminal is an IOMock backed by a buffer with scripted answers
type terminal struct {
	*iocli.IOMock

	mu      sync.Mutex
	out     bytes.Buffer
	answers []string
}

func newTerminal(answers ...string) *terminal {
	t := &terminal{answers: answers}
	next := func(string) (string, error) {
		t.mu.Lock()
		defer t.mu.Unlock()
		if len(t.answers) == 0 {
			return "", io.EOF
		}
		a := t.answers[0]
		t.answers = t.answers[1:]
		return a, nil
	}
	t.IOMock = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			t.mu.Lock()
			defer t.mu.Unlock()
			_, _ = io.WriteString(&t.out, fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			t.mu.Lock()
			defer t.mu.Unlock()
			_, _ = io.WriteString(&t.out, fmt.Sprintf(format, a...))
		},
		WriteFunc: func(p []byte) (int, error) {
			t.mu.Lock()
			defer t.mu.Unlock()
			return t.out.Write(p)
		},
		ReadInputFunc:    next,
		ReadPasswordFunc: next,
	}
	return t
}

func (t *terminal) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.out.String()
}

type testEnv struct {
	cli    *Cli
	term   *terminal
	guard  *session.Guard
	auth   *auth.ServiceMock
	store  *boltdb.Storage
	server *httptest.Server

	mu   sync.Mutex
	hits []string
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEnv собирает консоль поверх httptest сервера и временных баз
func newTestEnv(t *testing.T, handler http.HandlerFunc, answers ...string) *testEnv {
	t.Helper()
	ctx := context.Background()

	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	history, err := sqlite.New(ctx, filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = history.Close() })

	env := &testEnv{term: newTerminal(answers...), store: store, auth: &auth.ServiceMock{}}

	if handler == nil {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}
	}
	env.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.mu.Lock()
		env.hits = append(env.hits, r.Method+" "+r.URL.Path)
		env.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(env.server.Close)

	env.guard = session.NewGuard(store, nil, "https://devhub.example/login", discardLogger())
	client := api.NewClient(env.server.URL, env.guard, time.Second, discardLogger())

	env.cli = New(Deps{
		IO:             env.term,
		API:            client,
		Guard:          env.guard,
		Auth:           env.auth,
		Prefs:          store,
		History:        history,
		Logger:         discardLogger(),
		BackupDir:      t.TempDir(),
		WatchInterval:  20 * time.Millisecond,
		HealthInterval: 20 * time.Millisecond,
	})
	return env
}

func (e *testEnv) requests() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.hits...)
}

func mintToken(t *testing.T, exp time.Time, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, session.Claims{
		ID:       "admin-1",
		Email:    "root@devhub.io",
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
func (e *testEnv) login(t *testing.T) {
	t.Helper()
	token := mintToken(t, time.Now().Add(time.Hour), session.RoleAdmin)
	require.NoError(t, e.guard.SetToken(context.Background(), token))
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
