package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/devhub-admin/internal/client/session"
)

type statusView struct {
	ExpiresAt     time.Time
	Claims        *session.Claims
	Reason        string
	Remaining     time.Duration
	Authenticated bool
}

// runStatus is side-effect free: an expired token is reported, not removed
func (c *Cli) runStatus(ctx context.Context) error {
	check := c.guard.Check(ctx)
	view := statusView{Authenticated: check.Authenticated, Reason: check.Reason}

	if check.Authenticated {
		view.Claims = c.guard.CurrentUser(ctx)
		if view.Claims == nil {
			return fmt.Errorf("session token cannot be decoded")
		}
		view.ExpiresAt = view.Claims.ExpiresAt.Time
		view.Remaining = time.Until(view.ExpiresAt).Round(time.Second)
	}

	return c.render(statusTemplate, view)
}

func (c *Cli) runWhoami(ctx context.Context) error {
	claims := c.guard.CurrentUser(ctx)
	if claims == nil {
		return ErrNotAuthenticated
	}
	return c.render(whoamiTemplate, claims)
}
