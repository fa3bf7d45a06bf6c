package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/devhub-admin/internal/client/admin"
)

func (c *Cli) runCompanies(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		return c.runCompaniesList(ctx, rest)
	case "show":
		if err := needArgs("companies show <id>", rest, 1); err != nil {
			return err
		}
		company, err := c.companies.Get(ctx, rest[0])
		if err != nil || company == nil {
			return err
		}
		return c.render(companyTemplate, company)
	case "verify", "unverify":
		if err := needArgs("companies "+sub+" <id>", rest, 1); err != nil {
			return err
		}
		return c.companies.Verify(ctx, rest[0], sub == "verify")
	case "rankings":
		companies, err := c.companies.Rankings(ctx)
		if err != nil || companies == nil {
			return err
		}
		return c.render(rankingsTemplate, companies)
	case "delete":
		if err := needArgs("companies delete <id>", rest, 1); err != nil {
			return err
		}
		ok, err := c.confirm("Delete the company and all of its projects?")
		if err != nil || !ok {
			return err
		}
		return c.companies.Delete(ctx, rest[0])
	case "roles":
		if err := needArgs("companies roles <company-id> <user-id> <role,...>", rest, 3); err != nil {
			return err
		}
		return c.companies.UpdateMemberRoles(ctx, rest[0], rest[1], splitList(rest[2]))
	case "remove-member":
		if err := needArgs("companies remove-member <company-id> <user-id>", rest, 2); err != nil {
			return err
		}
		return c.companies.RemoveMember(ctx, rest[0], rest[1])
	default:
		return fmt.Errorf("unknown companies command: %s", sub)
	}
}

func (c *Cli) runCompaniesList(ctx context.Context, args []string) error {
	fs := newFlagSet("companies list")
	search := fs.String("search", "", "Name or owner substring")
	members := fs.String("members", "", "Member count: 1, 2-5 or 6+")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	companies, err := c.companies.List(ctx, admin.CompanyFilter{Search: *search, Members: *members})
	if err != nil || companies == nil {
		return err
	}
	return c.render(companiesTemplate, companies)
}
