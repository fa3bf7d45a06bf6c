package session

import (
	"context"
	"log/slog"
	"time"
)

// DefaultWatchInterval is how often a running console re-validates its token
const DefaultWatchInterval = 30 * time.Minute

// Watcher periodically re-validates the session of a long running command
type Watcher struct {
	guard    *Guard
	logger   *slog.Logger
	interval time.Duration
}

// NewWatcher creates a watcher; interval <= 0 uses DefaultWatchInterval
func NewWatcher(guard *Guard, interval time.Duration, logger *slog.Logger) *Watcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{guard: guard, interval: interval, logger: logger}
}

// Watch blocks until the session expires or ctx is done.
// On expiry it logs out once and returns nil; on cancellation it returns ctx.Err().
func (w *Watcher) Watch(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.logger.Debug("checking session token")
			if !w.guard.IsAuthenticated(ctx) {
				w.logger.Info("session token expired while running")
				w.guard.Logout(ctx, ReasonExpiredAutomatically)
				return nil
			}
		}
	}
}
