package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/devhub-admin/internal/client/storage"
)

func (c *Cli) runTheme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		theme, err := c.prefs.GetTheme(ctx)
		if err != nil {
			return fmt.Errorf("failed to read theme: %w", err)
		}
		c.io.Printf("Theme: %s\n", theme)
		return nil
	}

	theme := storage.Theme(args[0])
	if theme != storage.ThemeDark && theme != storage.ThemeLight {
		return fmt.Errorf("unknown theme: %s. Use: dark, light", args[0])
	}
	if err := c.prefs.SaveTheme(ctx, theme); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	c.io.Printf("Theme set to %s\n", theme)
	return nil
}
