package cli

import (
	"context"
	"fmt"
)

// publicCommands run without a session
var publicCommands = map[string]bool{
	"login":           true,
	"status":          true,
	"theme":           true,
	"ping":            true,
	"forgot-password": true,
	"reset-password":  true,
	"help":            true,
}

// Run executes one command. Every command outside publicCommands first
// requires a valid session.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	if !publicCommands[command] {
		if _, ok := commandNames[command]; !ok {
			PrintUsage(c.io)
			return fmt.Errorf("unknown command: %s", command)
		}
		if err := c.requireSession(ctx); err != nil {
			return err
		}
	}

	switch command {
	case "help":
		PrintUsage(c.io)
		return nil
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "whoami":
		return c.runWhoami(ctx)
	case "forgot-password":
		return c.runForgotPassword(ctx, args)
	case "reset-password":
		return c.runResetPassword(ctx, args)
	case "dashboard":
		return c.runDashboard(ctx)
	case "users":
		return c.runUsers(ctx, args)
	case "companies":
		return c.runCompanies(ctx, args)
	case "projects":
		return c.runProjects(ctx, args)
	case "categories":
		return c.runCategories(ctx, args)
	case "roles":
		return c.runRoles(ctx, args)
	case "notifications":
		return c.runNotifications(ctx, args)
	case "backup":
		return c.runBackup(ctx, args)
	case "ping":
		return c.runPing(ctx)
	case "watch":
		return c.runWatch(ctx)
	case "theme":
		return c.runTheme(ctx, args)
	}
	return nil
}

// commandNames are the protected commands
var commandNames = map[string]struct{}{
	"logout":        {},
	"whoami":        {},
	"dashboard":     {},
	"users":         {},
	"companies":     {},
	"projects":      {},
	"categories":    {},
	"roles":         {},
	"notifications": {},
	"backup":        {},
	"watch":         {},
}
