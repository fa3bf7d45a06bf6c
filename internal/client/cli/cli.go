// Package cli implements the commands of the DevHub admin console.
package cli

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"text/template"
	"time"

	"github.com/iudanet/devhub-admin/internal/client/admin"
	"github.com/iudanet/devhub-admin/internal/client/api"
	"github.com/iudanet/devhub-admin/internal/client/auth"
	"github.com/iudanet/devhub-admin/internal/client/iocli"
	"github.com/iudanet/devhub-admin/internal/client/notify"
	"github.com/iudanet/devhub-admin/internal/client/session"
	"github.com/iudanet/devhub-admin/internal/client/storage"
)

// ErrNotAuthenticated is returned by commands that need a session when there is none
var ErrNotAuthenticated = errors.New("not authenticated")

// Deps are the collaborators of the console
type Deps struct {
	IO        iocli.IO
	API       *api.Client
	Guard     *session.Guard
	Auth      auth.Service
	Prefs     storage.PreferencesStorage
	History   storage.BackupHistoryStorage
	Notifier  notify.Notifier
	Logger    *slog.Logger
	BackupDir string
	// WatchInterval and HealthInterval tune the watch command, 0 uses defaults
	WatchInterval  time.Duration
	HealthInterval time.Duration
}

type Cli struct {
	io          iocli.IO
	authService auth.Service
	guard       *session.Guard
	prefs       storage.PreferencesStorage
	pinger      admin.Pinger
	logger      *slog.Logger

	dashboard     *admin.Dashboard
	users         *admin.Users
	companies     *admin.Companies
	projects      *admin.Projects
	catalog       *admin.Catalog
	notifications *admin.Notifications
	backup        *admin.Backup

	backupDir      string
	watchInterval  time.Duration
	healthInterval time.Duration

	ended      atomic.Bool
	hintOnce   sync.Once
	lastReason atomic.Value
}

// New wires the page services and registers the logout handler on the guard
func New(d Deps) *Cli {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Notifier == nil {
		d.Notifier = notify.Nop{}
	}

	c := &Cli{
		io:             d.IO,
		authService:    d.Auth,
		guard:          d.Guard,
		prefs:          d.Prefs,
		pinger:         d.API,
		logger:         d.Logger,
		dashboard:      admin.NewDashboard(d.API, d.Notifier, d.Logger),
		users:          admin.NewUsers(d.API, d.Notifier, d.Logger),
		companies:      admin.NewCompanies(d.API, d.Notifier, d.Logger),
		projects:       admin.NewProjects(d.API, d.Notifier, d.Logger),
		catalog:        admin.NewCatalog(d.API, d.Notifier, d.Logger),
		notifications:  admin.NewNotifications(d.API, d.Notifier, d.Logger),
		backup:         admin.NewBackup(d.API, d.Guard, d.History, d.Prefs, d.Notifier, d.Logger),
		backupDir:      d.BackupDir,
		watchInterval:  d.WatchInterval,
		healthInterval: d.HealthInterval,
	}
	if c.backupDir == "" {
		c.backupDir = "."
	}
	d.Guard.OnLogout(c.handleLogout)
	return c
}

// handleLogout replaces the browser redirect: the guard already printed the
// reason, the console points to the login command once per process.
func (c *Cli) handleLogout(e session.LogoutEvent) {
	c.lastReason.Store(e.Reason)
	if e.Reason != session.ReasonManualLogout && e.Reason != session.ReasonBackupRestored {
		c.ended.Store(true)
	}
	c.hintOnce.Do(func() {
		c.io.Printf("Run 'devhub-admin login' to sign in again (%s)\n", e.LoginURL)
	})
}

// SessionEnded reports whether a command ended the session unexpectedly.
// The binary exits with status 2 in that case.
func (c *Cli) SessionEnded() bool {
	return c.ended.Load()
}

// LogoutReason returns the reason of the last logout, "" when none happened
func (c *Cli) LogoutReason() string {
	if v, ok := c.lastReason.Load().(string); ok {
		return v
	}
	return ""
}

// render выполняет шаблон и пишет результат в IO
func (c *Cli) render(tmpl *template.Template, data any) error {
	return tmpl.Execute(c.io, data)
}

// requireSession is the bootstrap gate of protected commands
func (c *Cli) requireSession(ctx context.Context) error {
	if c.guard.IsAuthenticated(ctx) {
		return nil
	}
	c.guard.Logout(ctx, session.ReasonLoginRequired)
	return ErrNotAuthenticated
}

// PrintUsage prints the command reference
func PrintUsage(out iocli.IO) {
	out.Printf("%s", usageText)
}
