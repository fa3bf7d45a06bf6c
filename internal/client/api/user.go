package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/iudanet/devhub-admin/pkg/api"
)

// CreateCompany creates a company owned by the current user
func (c *Client) CreateCompany(ctx context.Context, req api.CompanyRequest) (*api.Company, error) {
	return protected[*api.Company](ctx, c, http.MethodPost, "/companies", req)
}

// InviteCode generates an invite code for a company
func (c *Client) InviteCode(ctx context.Context, companyID string) (*api.InviteCodeResponse, error) {
	return protected[*api.InviteCodeResponse](ctx, c, http.MethodPost,
		"/companies/"+url.PathEscape(companyID)+"/invite", nil)
}

// JoinCompany joins a company by invite code
func (c *Client) JoinCompany(ctx context.Context, code string) (*api.MessageResponse, error) {
	return protected[*api.MessageResponse](ctx, c, http.MethodPost, "/companies/join",
		api.JoinCompanyRequest{Code: code})
}

// UpdateMemberRoles replaces the roles of a company member
func (c *Client) UpdateMemberRoles(ctx context.Context, companyID, userID string, roles []string) (*api.Company, error) {
	return protected[*api.Company](ctx, c, http.MethodPut,
		memberPath(companyID, userID), api.MemberRolesRequest{Roles: roles})
}

// RemoveMember removes a member from a company
func (c *Client) RemoveMember(ctx context.Context, companyID, userID string) (*api.MessageResponse, error) {
	return protected[*api.MessageResponse](ctx, c, http.MethodDelete, memberPath(companyID, userID), nil)
}

func memberPath(companyID, userID string) string {
	return "/companies/" + url.PathEscape(companyID) + "/members/" + url.PathEscape(userID)
}

// UpdateCompany updates company details
func (c *Client) UpdateCompany(ctx context.Context, id string, req api.CompanyRequest) (*api.Company, error) {
	return protected[*api.Company](ctx, c, http.MethodPut, "/companies/"+url.PathEscape(id), req)
}

// DeleteCompany deletes a company
func (c *Client) DeleteCompany(ctx context.Context, id string) (*api.MessageResponse, error) {
	return protected[*api.MessageResponse](ctx, c, http.MethodDelete, "/companies/"+url.PathEscape(id), nil)
}

// CreateProject submits a new project for moderation
func (c *Client) CreateProject(ctx context.Context, req api.ProjectRequest) (*api.Project, error) {
	return protected[*api.Project](ctx, c, http.MethodPost, "/projects", req)
}

// UpdateProject updates a project of the current user
func (c *Client) UpdateProject(ctx context.Context, id string, req api.ProjectRequest) (*api.Project, error) {
	return protected[*api.Project](ctx, c, http.MethodPut, "/projects/"+url.PathEscape(id), req)
}

// UpdateMyProfile updates the profile of the current user.
// Fields are passed through untouched.
func (c *Client) UpdateMyProfile(ctx context.Context, fields map[string]any) (*api.User, error) {
	return protected[*api.User](ctx, c, http.MethodPut, "/users/me", fields)
}

// CreateReview reviews a project
func (c *Client) CreateReview(ctx context.Context, projectID string, req api.ReviewRequest) (*api.Review, error) {
	return protected[*api.Review](ctx, c, http.MethodPost,
		"/reviews/"+url.PathEscape(projectID)+"/review", req)
}

// Сообщения об ошибках загрузки не зависят от ответа сервера
const (
	errMsgDownloadApp  = "failed to download application"
	errMsgDownloadCode = "failed to download source code"
	errMsgDownloadDoc  = "failed to download documentation"
)

// DownloadApp returns the application artifact of a project
func (c *Client) DownloadApp(ctx context.Context, projectID string) ([]byte, error) {
	return c.download(ctx, "/downloads/app/"+url.PathEscape(projectID), errMsgDownloadApp)
}

// DownloadCode returns the source archive of a project
func (c *Client) DownloadCode(ctx context.Context, projectID string) ([]byte, error) {
	return c.download(ctx, "/downloads/code/"+url.PathEscape(projectID), errMsgDownloadCode)
}

// DownloadDoc returns the documentation of a project
func (c *Client) DownloadDoc(ctx context.Context, projectID string) ([]byte, error) {
	return c.download(ctx, "/downloads/doc/"+url.PathEscape(projectID), errMsgDownloadDoc)
}

// download returns raw bytes; a nil slice with a nil error means the
// session was terminated
func (c *Client) download(ctx context.Context, endpoint, failMsg string) ([]byte, error) {
	if !c.checkAuth(ctx) {
		return nil, nil
	}

	resp, err := c.Request(ctx, endpoint, RequestOptions{})
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return nil, &Error{StatusCode: apiErr.StatusCode, Message: failMsg}
		}
		return nil, err
	}
	if resp == nil {
		return nil, nil
	}
	return resp.Body, nil
}
