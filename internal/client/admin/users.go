package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iudanet/devhub-admin/internal/client/api"
	"github.com/iudanet/devhub-admin/internal/client/notify"
	"github.com/iudanet/devhub-admin/internal/client/session"
	pkgapi "github.com/iudanet/devhub-admin/pkg/api"
)

// UserFilter selects users. Empty fields match everything.
type UserFilter struct {
	// Search is a case-insensitive substring of username, email or id
	Search string
	// Role must match exactly
	Role string
}

// Match reports whether u passes the filter
func (f UserFilter) Match(u pkgapi.User) bool {
	if f.Role != "" && u.Role != f.Role {
		return false
	}
	if f.Search == "" {
		return true
	}
	q := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(u.Username), q) ||
		strings.Contains(strings.ToLower(u.Email), q) ||
		strings.Contains(strings.ToLower(u.ID), q)
}

// FilterUsers returns the users that pass f, in order
func FilterUsers(users []pkgapi.User, f UserFilter) []pkgapi.User {
	out := make([]pkgapi.User, 0, len(users))
	for _, u := range users {
		if f.Match(u) {
			out = append(out, u)
		}
	}
	return out
}

// UserStats are the counters above the users table
type UserStats struct {
	Total    int
	Admins   int
	Filtered int
}

// UserList is the users page content
type UserList struct {
	All      []pkgapi.User
	Filtered []pkgapi.User
	Stats    UserStats
}

// Users backs the users page
type Users struct {
	base
}

// NewUsers creates the users service
func NewUsers(client *api.Client, notifier notify.Notifier, logger *slog.Logger) *Users {
	return &Users{base: newBase(client, notifier, logger)}
}

// List loads every user and applies f
func (s *Users) List(ctx context.Context, f UserFilter) (*UserList, error) {
	users, err := s.client.Users(ctx)
	if err != nil {
		return nil, s.fail("Failed to load users", err)
	}
	if users == nil {
		// сессия закрыта или пустой ответ
		return nil, nil
	}

	filtered := FilterUsers(users, f)
	stats := UserStats{Total: len(users), Filtered: len(filtered)}
	for _, u := range users {
		if u.Role == session.RoleAdmin {
			stats.Admins++
		}
	}

	s.success(fmt.Sprintf("%d users loaded", len(users)))
	return &UserList{All: users, Filtered: filtered, Stats: stats}, nil
}

// Get loads one user
func (s *Users) Get(ctx context.Context, id string) (*pkgapi.User, error) {
	user, err := s.client.User(ctx, id)
	if err != nil {
		return nil, s.fail("Failed to load user", err)
	}
	return user, nil
}

// ResetPassword sends a reset link; email may be empty to use the account email
func (s *Users) ResetPassword(ctx context.Context, id, email string) error {
	resp, err := s.client.ResetUserPassword(ctx, id, email)
	if err != nil {
		return s.fail("Failed to reset password", err)
	}
	if resp == nil {
		return nil
	}

	msg := "Reset link sent"
	if email != "" {
		msg += " to " + email
	}
	s.success(msg)
	return nil
}

// ResetEmails returns the addresses a reset link can be sent to:
// the account email first, then the personal contact email when different
func ResetEmails(u pkgapi.User) []string {
	out := []string{}
	if u.Email != "" {
		out = append(out, u.Email)
	}
	if u.Contacts != nil && u.Contacts.Email != "" && u.Contacts.Email != u.Email {
		out = append(out, u.Contacts.Email)
	}
	return out
}
