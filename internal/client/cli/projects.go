package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/devhub-admin/internal/client/admin"
	pkgapi "github.com/iudanet/devhub-admin/pkg/api"
)

type projectsView struct {
	Status   string
	Projects []pkgapi.Project
}

type countsView struct {
	Counts   map[string]int
	Statuses []string
}

type draftView struct {
	Project *pkgapi.Project
	Changes []admin.DraftChange
}

type draftRow struct {
	ID      string
	Title   string
	Changes int
}

func (c *Cli) runProjects(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		return c.runProjectsList(ctx, rest)
	case "counts":
		counts, err := c.projects.StatusCounts(ctx)
		if err != nil || counts == nil {
			return err
		}
		return c.render(countsTemplate, countsView{Counts: counts, Statuses: admin.ProjectStatuses})
	case "reasons":
		reasons, err := c.projects.FeedbackReasons(ctx)
		if err != nil || reasons == nil {
			return err
		}
		return c.render(reasonsTemplate, reasons)
	case "publish":
		if err := needArgs("projects publish <id>", rest, 1); err != nil {
			return err
		}
		return c.projects.Publish(ctx, rest[0])
	case "reject", "warn", "delete", "send":
		return c.runProjectFeedback(ctx, sub, rest)
	case "drafts":
		return c.runProjectDrafts(ctx)
	case "draft":
		if err := needArgs("projects draft <id>", rest, 1); err != nil {
			return err
		}
		p, err := c.projects.Draft(ctx, rest[0])
		if err != nil || p == nil {
			return err
		}
		return c.render(draftTemplate, draftView{Project: p, Changes: admin.DraftChanges(*p)})
	case "approve-draft":
		if err := needArgs("projects approve-draft <id>", rest, 1); err != nil {
			return err
		}
		return c.projects.ApproveDraft(ctx, rest[0])
	case "reject-draft":
		fs := newFlagSet("projects reject-draft")
		feedback := fs.String("feedback", "", "Why the draft is rejected")
		pos, err := parseFlags(fs, rest)
		if err != nil {
			return err
		}
		if err := needArgs("projects reject-draft <id> -feedback F", pos, 1); err != nil {
			return err
		}
		return c.projects.RejectDraft(ctx, pos[0], *feedback)
	default:
		return fmt.Errorf("unknown projects command: %s", sub)
	}
}

func (c *Cli) runProjectsList(ctx context.Context, args []string) error {
	fs := newFlagSet("projects list")
	status := fs.String("status", pkgapi.ProjectStatusPending, "pending, published, rejected or with_drafts")
	search := fs.String("search", "", "Title or description substring")
	category := fs.String("category", "", "Category code")
	platform := fs.String("platform", "", "Platform")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	projects, err := c.projects.List(ctx, admin.ProjectFilter{
		Status:   *status,
		Search:   *search,
		Category: *category,
		Platform: *platform,
	})
	if err != nil || projects == nil {
		return err
	}
	return c.render(projectsTemplate, projectsView{Status: *status, Projects: projects})
}

// runProjectFeedback handles the moderation actions that carry reasons
func (c *Cli) runProjectFeedback(ctx context.Context, action string, args []string) error {
	fs := newFlagSet("projects " + action)
	reasons := fs.String("reasons", "", "Comma separated reason codes")
	message := fs.String("message", "", "Custom message for the author")
	days := fs.Int("days", 0, "Days before the warning expires")
	pos, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	if err := needArgs("projects "+action+" <id> -reasons a,b", pos, 1); err != nil {
		return err
	}

	req := pkgapi.FeedbackRequest{Reasons: splitList(*reasons), CustomMessage: *message}
	if *days > 0 {
		req.ExpiresInDays = days
	}

	id := pos[0]
	switch action {
	case "reject":
		return c.projects.Reject(ctx, id, req)
	case "warn":
		return c.projects.Warn(ctx, id, req)
	case "delete":
		ok, err := c.confirm("Delete the project permanently?")
		if err != nil || !ok {
			return err
		}
		return c.projects.Delete(ctx, id, req)
	default:
		return c.projects.SendToAuthor(ctx, id, req)
	}
}

func (c *Cli) runProjectDrafts(ctx context.Context) error {
	projects, err := c.projects.List(ctx, admin.ProjectFilter{Status: pkgapi.ProjectStatusWithDrafts})
	if err != nil || projects == nil {
		return err
	}

	rows := make([]draftRow, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, draftRow{ID: p.ID, Title: p.Title, Changes: admin.CountDraftChanges(p)})
	}
	return c.render(draftsTemplate, rows)
}
