package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/iudanet/devhub-admin/internal/client/api"
	"github.com/iudanet/devhub-admin/internal/client/notify"
	pkgapi "github.com/iudanet/devhub-admin/pkg/api"
)

// ProjectStatuses are the moderation tabs in display order
var ProjectStatuses = []string{
	pkgapi.ProjectStatusPending,
	pkgapi.ProjectStatusPublished,
	pkgapi.ProjectStatusRejected,
	pkgapi.ProjectStatusWithDrafts,
}

var (
	// ErrNoReasons is returned when feedback carries no reason
	ErrNoReasons = errors.New("select at least one reason")
	// ErrUnknownStatus is returned for a status outside ProjectStatuses
	ErrUnknownStatus = errors.New("unknown project status")
	// ErrNoDraft is returned when a project has no pending draft
	ErrNoDraft = errors.New("project has no pending draft")
)

// ProjectFilter selects projects. Status is required, other empty fields
// match everything.
type ProjectFilter struct {
	Status string
	// Search is a case-insensitive substring of title, short or long description
	Search   string
	Category string
	Platform string
}

// Match reports whether p passes the filter. The with_drafts tab ignores
// the project status.
func (f ProjectFilter) Match(p pkgapi.Project) bool {
	if f.Status != pkgapi.ProjectStatusWithDrafts && p.Status != f.Status {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.ShortDesc), q) &&
			!strings.Contains(strings.ToLower(p.LongDesc), q) {
			return false
		}
	}
	if f.Category != "" && !slices.Contains(p.Categories, f.Category) {
		return false
	}
	if f.Platform != "" && !slices.Contains(p.Platforms, f.Platform) {
		return false
	}
	return true
}

// FilterProjects returns the projects that pass f, in order
func FilterProjects(projects []pkgapi.Project, f ProjectFilter) []pkgapi.Project {
	out := make([]pkgapi.Project, 0, len(projects))
	for _, p := range projects {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// DraftChange is one field that a draft proposes to change
type DraftChange struct {
	Field    string
	Current  string
	Proposed string
}

// DraftChanges lists the differences between a project and its draft
func DraftChanges(p pkgapi.Project) []DraftChange {
	d := p.Draft
	if d == nil {
		return nil
	}

	var changes []DraftChange
	text := func(field, current, proposed string) {
		if proposed != "" && proposed != current {
			changes = append(changes, DraftChange{Field: field, Current: current, Proposed: proposed})
		}
	}
	text("title", p.Title, d.Title)
	text("shortDesc", p.ShortDesc, d.ShortDesc)
	text("longDesc", p.LongDesc, d.LongDesc)
	text("iconUrl", p.IconURL, d.IconURL)

	if d.ImageURLs != nil && !slices.Equal(d.ImageURLs, p.ImageURLs) {
		changes = append(changes, DraftChange{
			Field:    "imageUrls",
			Current:  strings.Join(p.ImageURLs, ", "),
			Proposed: strings.Join(d.ImageURLs, ", "),
		})
	}

	if d.Files != nil {
		file := func(field string, current, proposed *pkgapi.ProjectFile) {
			if proposed != nil {
				changes = append(changes, DraftChange{Field: field, Current: current.Label(), Proposed: proposed.Label()})
			}
		}
		file("files.app", p.Files.App, d.Files.App)
		file("files.code", p.Files.Code, d.Files.Code)
		file("files.docPdf", p.Files.DocPDF, d.Files.DocPDF)
	}

	return changes
}

// CountDraftChanges returns the number of fields a draft changes
func CountDraftChanges(p pkgapi.Project) int {
	return len(DraftChanges(p))
}

// ValidateFeedback requires at least one non-blank reason
func ValidateFeedback(req pkgapi.FeedbackRequest) error {
	for _, r := range req.Reasons {
		if strings.TrimSpace(r) != "" {
			return nil
		}
	}
	return ErrNoReasons
}

// Projects backs the moderation page
type Projects struct {
	base
}

// NewProjects creates the projects service
func NewProjects(client *api.Client, notifier notify.Notifier, logger *slog.Logger) *Projects {
	return &Projects{base: newBase(client, notifier, logger)}
}

// List loads the projects of f.Status and applies f
func (s *Projects) List(ctx context.Context, f ProjectFilter) ([]pkgapi.Project, error) {
	if !slices.Contains(ProjectStatuses, f.Status) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, f.Status)
	}

	var (
		projects []pkgapi.Project
		err      error
	)
	if f.Status == pkgapi.ProjectStatusWithDrafts {
		projects, err = s.client.ProjectsWithDrafts(ctx)
	} else {
		projects, err = s.client.AdminProjects(ctx, f.Status)
	}
	if err != nil {
		return nil, s.fail("Failed to load projects", err)
	}
	if projects == nil {
		return nil, nil
	}
	return FilterProjects(projects, f), nil
}

// StatusCounts returns the number of projects per tab
func (s *Projects) StatusCounts(ctx context.Context) (map[string]int, error) {
	stats, err := s.client.Stats(ctx)
	if err != nil {
		return nil, s.fail("Failed to load counters", err)
	}
	if stats == nil {
		return nil, nil
	}

	drafts, err := s.client.ProjectsWithDrafts(ctx)
	if err != nil {
		s.logger.Warn("failed to count drafts", "error", err)
	}

	counts := make(map[string]int, len(ProjectStatuses))
	for _, st := range ProjectStatuses {
		counts[st] = stats.ProjectsByStatus[st]
	}
	counts[pkgapi.ProjectStatusWithDrafts] = len(drafts)
	return counts, nil
}

// FeedbackReasons loads the predefined reasons
func (s *Projects) FeedbackReasons(ctx context.Context) (*pkgapi.FeedbackReasons, error) {
	reasons, err := s.client.FeedbackReasons(ctx)
	if err != nil {
		return nil, s.fail("Failed to load reasons", err)
	}
	return reasons, nil
}

// Publish publishes a project
func (s *Projects) Publish(ctx context.Context, id string) error {
	resp, err := s.client.PublishProject(ctx, id)
	return s.done(resp, err, "Project published")
}

// Reject rejects a project. Reasons are required.
func (s *Projects) Reject(ctx context.Context, id string, req pkgapi.FeedbackRequest) error {
	if err := ValidateFeedback(req); err != nil {
		return err
	}
	req.ExpiresInDays = nil
	resp, err := s.client.RejectProject(ctx, id, req)
	return s.done(resp, err, "Project rejected")
}

// Warn warns the author. Reasons are required, ExpiresInDays is kept.
func (s *Projects) Warn(ctx context.Context, id string, req pkgapi.FeedbackRequest) error {
	if err := ValidateFeedback(req); err != nil {
		return err
	}
	resp, err := s.client.WarnProject(ctx, id, req)
	return s.done(resp, err, "Warning sent to the author")
}

// Delete deletes a project and notifies the author. Reasons are required.
func (s *Projects) Delete(ctx context.Context, id string, req pkgapi.FeedbackRequest) error {
	if err := ValidateFeedback(req); err != nil {
		return err
	}
	req.ExpiresInDays = nil
	resp, err := s.client.DeleteProjectAdmin(ctx, id, req)
	return s.done(resp, err, "Project deleted")
}

// SendToAuthor returns a project for edits. Reasons are required.
func (s *Projects) SendToAuthor(ctx context.Context, id string, req pkgapi.FeedbackRequest) error {
	if err := ValidateFeedback(req); err != nil {
		return err
	}
	req.ExpiresInDays = nil
	resp, err := s.client.SendProjectToAuthor(ctx, id, req)
	return s.done(resp, err, "Project sent to the author with feedback")
}

// ApproveDraft applies the pending draft
func (s *Projects) ApproveDraft(ctx context.Context, id string) error {
	resp, err := s.client.ApproveDraft(ctx, id)
	return s.done(resp, err, "Draft approved")
}

// RejectDraft discards the pending draft with feedback
func (s *Projects) RejectDraft(ctx context.Context, id, feedback string) error {
	if strings.TrimSpace(feedback) == "" {
		return fmt.Errorf("feedback cannot be empty")
	}
	resp, err := s.client.RejectDraft(ctx, id, feedback)
	return s.done(resp, err, "Draft rejected")
}

// Draft finds a project with a pending draft
func (s *Projects) Draft(ctx context.Context, id string) (*pkgapi.Project, error) {
	projects, err := s.client.ProjectsWithDrafts(ctx)
	if err != nil {
		return nil, s.fail("Failed to load drafts", err)
	}
	if projects == nil {
		return nil, nil
	}
	for i := range projects {
		if projects[i].ID == id && projects[i].Draft != nil {
			return &projects[i], nil
		}
	}
	return nil, ErrNoDraft
}

// done завершает мутацию: уведомление об успехе или ошибке
func (s *Projects) done(resp *pkgapi.MessageResponse, err error, msg string) error {
	if err != nil {
		return s.fail("Error", err)
	}
	if resp != nil {
		s.success(msg)
	}
	return nil
}
