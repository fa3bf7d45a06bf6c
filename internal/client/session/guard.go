// Package session owns the bearer token lifecycle of the console:
// storage, claims parsing, expiry evaluation and forced logout.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/devhub-admin/internal/client/notify"
	"github.com/iudanet/devhub-admin/internal/client/storage"
)

// Guard is the only writer of the token slot and the only authority that
// may terminate a session. Every protected operation consults IsAuthenticated
// or CheckBeforeRequest.
type Guard struct {
	store    storage.TokenStorage
	notifier notify.Notifier
	logger   *slog.Logger
	now      func() time.Time
	onLogout LogoutHandler
	loginURL string

	mu       sync.Mutex // serialises the logout sequence
	handlerM sync.RWMutex
}

// NewGuard creates a session guard over the token slot.
// A nil notifier discards notifications, a nil logger uses slog.Default().
func NewGuard(store storage.TokenStorage, notifier notify.Notifier, loginURL string, logger *slog.Logger) *Guard {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Guard{
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		loginURL: loginURL,
	}
}

// OnLogout registers the handler that takes the user back to the login entry point.
// The handler runs under the logout lock and must not call Logout itself.
func (g *Guard) OnLogout(handler LogoutHandler) {
	g.handlerM.Lock()
	defer g.handlerM.Unlock()
	g.onLogout = handler
}

// LoginURL returns the configured login entry point
func (g *Guard) LoginURL() string {
	return g.loginURL
}

// SetToken stores the token without validating it
func (g *Guard) SetToken(ctx context.Context, token string) error {
	g.logger.Debug("saving session token")
	return g.store.SaveToken(ctx, token)
}

// Token returns the stored token, or "" when there is none.
// Storage failures are logged and read as "no token".
func (g *Guard) Token(ctx context.Context) string {
	token, err := g.store.GetToken(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrTokenNotFound) {
			g.logger.Warn("failed to read session token", "error", err)
		}
		return ""
	}
	return token
}

// RemoveToken clears the token slot. Idempotent.
func (g *Guard) RemoveToken(ctx context.Context) error {
	g.logger.Debug("removing session token")
	if err := g.store.DeleteToken(ctx); err != nil && !errors.Is(err, storage.ErrTokenNotFound) {
		return err
	}
	return nil
}

// ParseToken decodes the payload segment of token.
// Returns false for a missing, malformed or non-JSON payload; never panics.
func (g *Guard) ParseToken(token string) (*Claims, bool) {
	claims, err := decodeClaims(token)
	if err != nil {
		g.logger.Debug("token is not parseable", "error", err)
		return nil, false
	}
	return claims, true
}

// IsTokenValid reports whether token parses, carries exp and exp is
// strictly after the current second
func (g *Guard) IsTokenValid(token string) bool {
	claims, ok := g.ParseToken(token)
	if !ok || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Unix() > g.now().Unix()
}

// IsAuthenticated reports whether a token exists and is valid
func (g *Guard) IsAuthenticated(ctx context.Context) bool {
	token := g.Token(ctx)
	if token == "" {
		return false
	}
	return g.IsTokenValid(token)
}

// IsAdmin reports whether a valid token carries the admin role
func (g *Guard) IsAdmin(ctx context.Context) bool {
	claims := g.validClaims(ctx)
	return claims != nil && claims.Role == RoleAdmin
}

// CurrentUser returns the claims of the stored token, nil when there is no
// parseable token. Expiry is not checked.
func (g *Guard) CurrentUser(ctx context.Context) *Claims {
	token := g.Token(ctx)
	if token == "" {
		return nil
	}
	claims, ok := g.ParseToken(token)
	if !ok {
		return nil
	}
	return claims
}

func (g *Guard) validClaims(ctx context.Context) *Claims {
	token := g.Token(ctx)
	if token == "" || !g.IsTokenValid(token) {
		return nil
	}
	claims, _ := g.ParseToken(token)
	return claims
}

// Check is the side-effect free pre-flight check
func (g *Guard) Check(ctx context.Context) AuthCheck {
	token := g.Token(ctx)
	if token == "" {
		return AuthCheck{Reason: ReasonNoSession}
	}
	if !g.IsTokenValid(token) {
		return AuthCheck{Reason: ReasonExpired}
	}
	return AuthCheck{Authenticated: true}
}

// CheckBeforeRequest runs Check and logs out when the session is unusable.
// A false result means "abort silently": the logout path already told the user.
func (g *Guard) CheckBeforeRequest(ctx context.Context) bool {
	check := g.Check(ctx)
	if check.Authenticated {
		return true
	}
	g.Logout(ctx, check.Reason)
	return false
}

// Logout clears the token, notifies the user and emits a LogoutEvent.
// The token is always cleared before the handler runs. Safe to call
// repeatedly and from several goroutines.
func (g *Guard) Logout(ctx context.Context, reason string) {
	if reason == "" {
		reason = ReasonSessionClosed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.logger.Info("closing session", "reason", reason)

	if err := g.RemoveToken(ctx); err != nil {
		// notify and the logout handler still run
		g.logger.Error("failed to remove session token", "error", err)
	}

	g.notify(reason)

	g.handlerM.RLock()
	handler := g.onLogout
	g.handlerM.RUnlock()

	if handler != nil {
		handler(LogoutEvent{Reason: reason, LoginURL: g.loginURL})
	}
}

// notify is best effort: a failing sink must not block logout
func (g *Guard) notify(reason string) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Warn("logout notification failed", "panic", r)
		}
	}()
	g.notifier.Notify(notify.LevelInfo, reason)
}
