package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/devhub-admin/internal/client/admin"
	pkgapi "github.com/iudanet/devhub-admin/pkg/api"
)

type usersView struct {
	Stats admin.UserStats
	Page  admin.Page[pkgapi.User]
}

func (c *Cli) runUsers(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		return c.runUsersList(ctx, rest)
	case "reset-password":
		return c.runUserResetPassword(ctx, rest)
	default:
		return fmt.Errorf("unknown users command: %s. Use: list, reset-password", sub)
	}
}

func (c *Cli) runUsersList(ctx context.Context, args []string) error {
	fs := newFlagSet("users list")
	search := fs.String("search", "", "Username, email or id substring")
	role := fs.String("role", "", "Exact role")
	page := fs.Int("page", 1, "Page number")
	perPage := fs.Int("per-page", admin.DefaultPerPage, "Users per page")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	list, err := c.users.List(ctx, admin.UserFilter{Search: *search, Role: *role})
	if err != nil || list == nil {
		return err
	}

	return c.render(usersTemplate, usersView{
		Stats: list.Stats,
		Page:  admin.Paginate(list.Filtered, *page, *perPage),
	})
}

// runUserResetPassword sends the link to -email, or lets the operator pick
// one of the user's known addresses
func (c *Cli) runUserResetPassword(ctx context.Context, args []string) error {
	fs := newFlagSet("users reset-password")
	email := fs.String("email", "", "Address to send the link to")
	pos, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	if err := needArgs("users reset-password <id> [-email E]", pos, 1); err != nil {
		return err
	}
	id := pos[0]

	if *email == "" {
		picked, err := c.pickResetEmail(ctx, id)
		if err != nil {
			return err
		}
		*email = picked
	}

	return c.users.ResetPassword(ctx, id, *email)
}

// pickResetEmail returns "" to use the account email on the server side
func (c *Cli) pickResetEmail(ctx context.Context, id string) (string, error) {
	user, err := c.users.Get(ctx, id)
	if err != nil || user == nil {
		return "", err
	}

	emails := admin.ResetEmails(*user)
	if len(emails) < 2 {
		return "", nil
	}

	c.io.Println("Send the reset link to:")
	for i, e := range emails {
		c.io.Printf("  %d. %s\n", i+1, e)
	}
	answer, err := c.io.ReadInput("Choice [1]: ")
	if err != nil {
		return "", fmt.Errorf("failed to read choice: %w", err)
	}
	if answer == "" {
		return emails[0], nil
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(emails) {
		return "", fmt.Errorf("invalid choice: %s", answer)
	}
	return emails[n-1], nil
}
