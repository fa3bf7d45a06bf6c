package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/devhub-admin/internal/client/admin"
	"github.com/iudanet/devhub-admin/internal/client/storage"
)

type historyView struct {
	LastSince string
	Records   []*storage.BackupRecord
	HasLast   bool
}

func (c *Cli) runBackup(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "history")
	switch sub {
	case "export":
		fs := newFlagSet("backup export")
		collections := fs.String("collections", "", "Comma separated collections, empty exports all")
		quick := fs.Bool("quick", false, "Export users and projects only")
		if _, err := parseFlags(fs, rest); err != nil {
			return err
		}
		selected := splitList(*collections)
		if *quick {
			selected = admin.QuickCollections
		}
		res, err := c.backup.Export(ctx, selected, c.backupDir)
		if err != nil || res == nil {
			return err
		}
		c.io.Printf("Saved %s (%s)\n", res.Path, admin.FormatSize(res.Record.Size))
		return nil
	case "import":
		if err := needArgs("backup import <file>", rest, 1); err != nil {
			return err
		}
		ok, err := c.confirm("Restoring replaces the server data and ends your session.")
		if err != nil || !ok {
			return err
		}
		return c.backup.Import(ctx, rest[0])
	case "history":
		fs := newFlagSet("backup history")
		limit := fs.Int("limit", admin.DefaultHistoryLimit, "Number of records")
		if _, err := parseFlags(fs, rest); err != nil {
			return err
		}
		return c.runBackupHistory(ctx, *limit)
	case "size":
		fs := newFlagSet("backup size")
		collections := fs.String("collections", "", "Comma separated collections, empty means all")
		if _, err := parseFlags(fs, rest); err != nil {
			return err
		}
		size, err := c.backup.Size(ctx, splitList(*collections))
		if err != nil || size == nil {
			return err
		}
		c.io.Printf("Estimated backup size: %s\n", admin.FormatSize(size.Size))
		return nil
	default:
		return fmt.Errorf("unknown backup command: %s", sub)
	}
}

func (c *Cli) runBackupHistory(ctx context.Context, limit int) error {
	records, err := c.backup.History(ctx, limit)
	if err != nil {
		return err
	}
	last, ok, err := c.backup.LastBackup(ctx)
	if err != nil {
		return err
	}

	view := historyView{Records: records, HasLast: ok}
	if ok {
		view.LastSince = admin.FormatSince(last, time.Now())
	}
	return c.render(backupHistoryTemplate, view)
}
