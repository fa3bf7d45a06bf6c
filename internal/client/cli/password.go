package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runForgotPassword(ctx context.Context, args []string) error {
	email := ""
	if len(args) > 0 {
		email = args[0]
	} else {
		var err error
		email, err = c.io.ReadInput("Email: ")
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
	}
	return c.authService.ResetPassword(ctx, email)
}

func (c *Cli) runResetPassword(ctx context.Context, args []string) error {
	if err := needArgs("reset-password <token>", args, 1); err != nil {
		return err
	}

	password, err := c.io.ReadPassword("New password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	repeat, err := c.io.ReadPassword("Repeat password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if password != repeat {
		return fmt.Errorf("passwords do not match")
	}

	return c.authService.ConfirmResetPassword(ctx, args[0], password)
}
