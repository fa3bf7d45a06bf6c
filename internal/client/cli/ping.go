package cli

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/devhub-admin/internal/client/admin"
	"github.com/iudanet/devhub-admin/internal/client/session"
)

// ErrServerOffline is returned by ping when the server does not answer
var ErrServerOffline = errors.New("server is offline")

func (c *Cli) runPing(ctx context.Context) error {
	if !c.pinger.Ping(ctx) {
		c.io.Println("Server: offline")
		return ErrServerOffline
	}
	c.io.Println("Server: online")
	return nil
}

// runWatch re-validates the session and reports server state changes until
// the session ends or ctx is cancelled
func (c *Cli) runWatch(ctx context.Context) error {
	c.io.Println("Watching the server and the session. Press Ctrl+C to stop.")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	monitor := admin.NewHealthMonitor(c.pinger, c.healthInterval, func(online bool) {
		if online {
			c.io.Println("Server: online")
		} else {
			c.io.Println("Server: offline")
		}
	}, c.logger)
	watcher := session.NewWatcher(c.guard, c.watchInterval, c.logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Истечение сессии завершает и мониторинг сервера
		defer cancel()
		return watcher.Watch(gctx)
	})
	g.Go(func() error {
		return monitor.Run(gctx)
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
