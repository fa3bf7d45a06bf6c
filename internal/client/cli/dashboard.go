package cli

import (
	"context"
)

func (c *Cli) runDashboard(ctx context.Context) error {
	data, err := c.dashboard.Load(ctx)
	if err != nil || data == nil {
		return err
	}
	return c.render(dashboardTemplate, data)
}
