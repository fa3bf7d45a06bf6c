package cli

import (
	"context"
	"fmt"

	pkgapi "github.com/iudanet/devhub-admin/pkg/api"
)

func (c *Cli) runCategories(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		categories, err := c.catalog.Categories(ctx)
		if err != nil || categories == nil {
			return err
		}
		return c.render(categoriesTemplate, categories)
	case "save":
		fs := newFlagSet("categories save")
		id := fs.String("id", "", "Category to update, empty creates one")
		code := fs.String("code", "", "Code: lowercase letters and underscores")
		name := fs.String("name", "", "Display name")
		description := fs.String("description", "", "Description")
		if _, err := parseFlags(fs, rest); err != nil {
			return err
		}
		_, err := c.catalog.SaveCategory(ctx, *id, pkgapi.CategoryRequest{
			Code:        *code,
			Name:        *name,
			Description: *description,
		})
		return err
	case "delete":
		if err := needArgs("categories delete <id>", rest, 1); err != nil {
			return err
		}
		ok, err := c.confirm("Delete the category?")
		if err != nil || !ok {
			return err
		}
		return c.catalog.DeleteCategory(ctx, rest[0])
	case "seed":
		return c.catalog.Seed(ctx)
	default:
		return fmt.Errorf("unknown categories command: %s", sub)
	}
}

func (c *Cli) runRoles(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		fs := newFlagSet("roles list")
		category := fs.String("category", "", "Category id")
		if _, err := parseFlags(fs, rest); err != nil {
			return err
		}
		roles, err := c.catalog.Roles(ctx, *category)
		if err != nil || roles == nil {
			return err
		}
		return c.render(rolesTemplate, roles)
	case "save":
		fs := newFlagSet("roles save")
		id := fs.String("id", "", "Role to update, empty creates one")
		code := fs.String("code", "", "Code: lowercase letters and underscores")
		name := fs.String("name", "", "Display name")
		category := fs.String("category", "", "Category id")
		description := fs.String("description", "", "Description")
		if _, err := parseFlags(fs, rest); err != nil {
			return err
		}
		_, err := c.catalog.SaveRole(ctx, *id, pkgapi.RoleRequest{
			Code:        *code,
			Name:        *name,
			CategoryID:  *category,
			Description: *description,
		})
		return err
	case "delete":
		if err := needArgs("roles delete <id>", rest, 1); err != nil {
			return err
		}
		return c.catalog.DeleteRole(ctx, rest[0])
	default:
		return fmt.Errorf("unknown roles command: %s", sub)
	}
}
