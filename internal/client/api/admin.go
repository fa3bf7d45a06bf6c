package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/iudanet/devhub-admin/pkg/api"
)

// AdminProjects returns every project; status filters when not empty
func (c *Client) AdminProjects(ctx context.Context, status string) ([]api.Project, error) {
	params := url.Values{}
	if status != "" {
		params.Set("status", status)
	}
	return protected[[]api.Project](ctx, c, http.MethodGet, withQuery("/admin/projects", params), nil)
}

func adminProjectPath(id, action string) string {
	p := "/admin/projects/" + url.PathEscape(id)
	if action != "" {
		p += "/" + action
	}
	return p
}

// UpdateAdminProject updates any project
func (c *Client) UpdateAdminProject(ctx context.Context, id string, req api.ProjectRequest) (*api.Project, error) {
	return protected[*api.Project](ctx, c, http.MethodPut, adminProjectPath(id, ""), req)
}

// SendProjectToAuthor returns a project to its author for edits
func (c *Client) SendProjectToAuthor(ctx context.Context, id string, req api.FeedbackRequest) (*api.MessageResponse, error) {
	return protected[*api.MessageResponse](ctx, c, http.MethodPost, adminProjectPath(id, "send-to-author"), req)
}

// PublishProject publishes a project
func (c *Client) PublishProject(ctx context.Context, id string) (*api.MessageResponse, error) {
	return protected[*api.MessageResponse](ctx, c, http.MethodPost, adminProjectPath(id, "publish"), nil)
}

// RejectProject rejects a project with feedback
func (c *Client) RejectProject(ctx context.Context, id string, req api.FeedbackRequest) (*api.MessageResponse, error) {
	return protected[*api.MessageResponse](ctx, c, http.MethodPost, adminProjectPath(id, "reject"), req)
}

// WarnProject sends a warning to the author of a project
func (c *Client) WarnProject(ctx context.Context, id string, req api.FeedbackRequest) (*api.MessageResponse, error) {
	return protected[*api.MessageResponse](ctx, c, http.MethodPost, adminProjectPath(id, "warn"), req)
}

// DeleteProjectAdmin deletes a project and notifies the author
func (c *Client) DeleteProjectAdmin(ctx context.Context, id string, req api.FeedbackRequest) (*api.MessageResponse, error) {
	return protected[*api.MessageResponse](ctx, c, http.MethodDelete, adminProjectPath(id, ""), req)
}

// FeedbackReasons returns the predefined moderation reasons
func (c *Client) FeedbackReasons(ctx context.Context) (*api.FeedbackReasons, error) {
	return protected[*api.FeedbackReasons](ctx, c, http.MethodGet, "/admin/feedback-reasons", nil)
}

// ProjectsWithDrafts returns projects that have pending drafts
func (c *Client) ProjectsWithDrafts(ctx context.Context) ([]api.Project, error) {
	return protected[[]api.Project](ctx, c, http.MethodGet, "/admin/projects/with-drafts", nil)
}

// ApproveDraft applies the pending draft of a project
func (c *Client) ApproveDraft(ctx context.Context, projectID string) (*api.MessageResponse, error) {
	return protected[*api.MessageResponse](ctx, c, http.MethodPost, adminProjectPath(projectID, "approve-draft"), nil)
}

// RejectDraft rejects the pending draft of a project
func (c *Client) RejectDraft(ctx context.Context, projectID, feedback string) (*api.MessageResponse, error) {
	return protected[*api.MessageResponse](ctx, c, http.MethodPost, adminProjectPath(projectID, "reject-draft"),
		api.DraftFeedbackRequest{Feedback: feedback})
}

// ClearRejectedDraft removes a rejected draft (author side)
func (c *Client) ClearRejectedDraft(ctx context.Context, projectID string) (*api.MessageResponse, error) {
	return protected[*api.MessageResponse](ctx, c, http.MethodDelete,
		"/projects/"+url.PathEscape(projectID)+"/clear-draft", nil)
}

// Users returns every user
func (c *Client) Users(ctx context.Context) ([]api.User, error) {
	return protected[[]api.User](ctx, c, http.MethodGet, "/admin/users", nil)
}

// ResetUserPassword sends a reset link to the user.
// The body carries email only when it is set.
func (c *Client) ResetUserPassword(ctx context.Context, id, email string) (*api.MessageResponse, error) {
	var body any
	if email != "" {
		body = api.ResetUserPasswordRequest{Email: email}
	}
	return protected[*api.MessageResponse](ctx, c, http.MethodPost,
		"/admin/users/"+url.PathEscape(id)+"/reset-password", body)
}

func collectionsQuery(collections []string) url.Values {
	params := url.Values{}
	if len(collections) > 0 {
		params.Set("collections", strings.Join(collections, ","))
	}
	return params
}

// ExportBackup exports the given collections, all of them when empty
func (c *Client) ExportBackup(ctx context.Context, collections []string) (*api.BackupExport, error) {
	return protected[*api.BackupExport](ctx, c, http.MethodGet,
		withQuery("/admin/backup/export", collectionsQuery(collections)), nil)
}

// ImportBackup restores a backup. raw must be the JSON document produced by export.
func (c *Client) ImportBackup(ctx context.Context, raw []byte) (*api.MessageResponse, error) {
	if !c.checkAuth(ctx) {
		return nil, nil
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("backup is not valid JSON")
	}

	resp, err := c.Request(ctx, "/admin/backup/import", RequestOptions{Method: http.MethodPost, Body: raw})
	if err != nil || resp == nil {
		return nil, err
	}

	var out api.MessageResponse
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BackupSize returns the export size without downloading it
func (c *Client) BackupSize(ctx context.Context, collections []string) (*api.BackupSize, error) {
	return protected[*api.BackupSize](ctx, c, http.MethodGet,
		withQuery("/admin/backup/size", collectionsQuery(collections)), nil)
}

// Stats returns the dashboard counters
func (c *Client) Stats(ctx context.Context) (*api.Stats, error) {
	return protected[*api.Stats](ctx, c, http.MethodGet, "/stats", nil)
}

// VerifyCompany sets or clears the verified badge
func (c *Client) VerifyCompany(ctx context.Context, id string, verified bool) (*api.Company, error) {
	return protected[*api.Company](ctx, c, http.MethodPatch,
		"/admin/companies/"+url.PathEscape(id)+"/verify", api.VerifyCompanyRequest{IsVerified: verified})
}

// CompanyRankings returns companies ordered by ranking
func (c *Client) CompanyRankings(ctx context.Context) ([]api.Company, error) {
	return protected[[]api.Company](ctx, c, http.MethodGet, "/admin/companies/rankings", nil)
}

// Companies returns companies; params are passed as query
func (c *Client) Companies(ctx context.Context, params url.Values) ([]api.Company, error) {
	return protected[[]api.Company](ctx, c, http.MethodGet, withQuery("/companies", params), nil)
}

// AllCompanies reads companies from a backup export of the companies
// collection. When the export fails it falls back to an empty list.
func (c *Client) AllCompanies(ctx context.Context) ([]api.Company, error) {
	if !c.checkAuth(ctx) {
		return nil, nil
	}

	export, err := c.ExportBackup(ctx, []string{"companies"})
	if err == nil {
		if export == nil {
			// сессия закрыта во время экспорта
			return nil, nil
		}
		var data struct {
			Companies []api.Company `json:"companies"`
		}
		if err = json.Unmarshal(export.Data, &data); err == nil {
			return present(data.Companies), nil
		}
	}

	c.logger.Warn("backup export unavailable, scanning users", "error", err)

	users, err := c.Users(ctx)
	if err != nil || users == nil {
		return nil, err
	}
	for _, u := range users {
		if u.CompaniesCount > 0 {
			c.logger.Debug("user owns companies", "username", u.Username, "companies", u.CompaniesCount)
		}
	}
	// Нет эндпоинта для компаний пользователя
	return []api.Company{}, nil
}
