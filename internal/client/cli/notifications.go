package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runNotifications(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		fs := newFlagSet("notifications list")
		unread := fs.Bool("unread", false, "Only unread notifications")
		limit := fs.Int("limit", 20, "Maximum number of notifications")
		if _, err := parseFlags(fs, rest); err != nil {
			return err
		}
		items, err := c.notifications.List(ctx, *unread, *limit)
		if err != nil || items == nil {
			return err
		}
		return c.render(notificationsTemplate, items)
	case "stats":
		stats, err := c.notifications.Stats(ctx)
		if err != nil || stats == nil {
			return err
		}
		c.io.Printf("Notifications: %d total, %d unread\n", stats.Total, stats.Unread)
		return nil
	case "read":
		if err := needArgs("notifications read <id>", rest, 1); err != nil {
			return err
		}
		return c.notifications.MarkRead(ctx, rest[0])
	case "read-all":
		return c.notifications.MarkAllRead(ctx)
	case "delete":
		if err := needArgs("notifications delete <id>", rest, 1); err != nil {
			return err
		}
		return c.notifications.Delete(ctx, rest[0])
	default:
		return fmt.Errorf("unknown notifications command: %s", sub)
	}
}
