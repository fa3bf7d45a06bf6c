package admin

import (
	"context"
	"log/slog"
	"time"
)

// DefaultHealthInterval is how often the health monitor pings the server
const DefaultHealthInterval = 90 * time.Second

// Pinger reports whether the server is online
type Pinger interface {
	Ping(ctx context.Context) bool
}

// HealthMonitor pings the server and reports state changes only
type HealthMonitor struct {
	pinger   Pinger
	logger   *slog.Logger
	onChange func(online bool)
	interval time.Duration
}

// NewHealthMonitor creates a monitor; interval <= 0 uses DefaultHealthInterval
func NewHealthMonitor(pinger Pinger, interval time.Duration, onChange func(online bool), logger *slog.Logger) *HealthMonitor {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthMonitor{pinger: pinger, interval: interval, onChange: onChange, logger: logger}
}

// Run pings immediately and then every interval until ctx is done.
// onChange runs for the first result and for every change after it.
func (m *HealthMonitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	var (
		known  bool
		online bool
	)
	check := func() {
		state := m.pinger.Ping(ctx)
		if known && state == online {
			return
		}
		if ctx.Err() != nil {
			return
		}
		known, online = true, state
		m.logger.Info("server state changed", "online", state)
		if m.onChange != nil {
			m.onChange(state)
		}
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			check()
		}
	}
}
