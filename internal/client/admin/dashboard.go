package admin

import (
	"context"
	"log/slog"

	"github.com/iudanet/devhub-admin/internal/client/api"
	"github.com/iudanet/devhub-admin/internal/client/notify"
	pkgapi "github.com/iudanet/devhub-admin/pkg/api"
)

// DashboardData is the content of the dashboard page
type DashboardData struct {
	Stats *pkgapi.Stats
	// Drafts is the number of projects with pending drafts
	Drafts int
}

// Dashboard loads the summary counters
type Dashboard struct {
	base
}

// NewDashboard creates the dashboard service
func NewDashboard(client *api.Client, notifier notify.Notifier, logger *slog.Logger) *Dashboard {
	return &Dashboard{base: newBase(client, notifier, logger)}
}

// Load returns the counters. A missing drafts count is not an error.
func (d *Dashboard) Load(ctx context.Context) (*DashboardData, error) {
	stats, err := d.client.Stats(ctx)
	if err != nil {
		return nil, d.fail("Failed to load data", err)
	}
	if stats == nil {
		return nil, nil
	}

	data := &DashboardData{Stats: stats}

	drafts, err := d.client.ProjectsWithDrafts(ctx)
	if err != nil {
		d.logger.Warn("failed to count drafts", "error", err)
	}
	data.Drafts = len(drafts)

	return data, nil
}
