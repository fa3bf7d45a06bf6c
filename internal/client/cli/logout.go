package cli

import (
	"context"
)

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	// Событие выхода печатает подсказку для повторного входа
	c.authService.Logout(ctx)
	return nil
}
