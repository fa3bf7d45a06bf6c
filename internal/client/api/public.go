package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/iudanet/devhub-admin/pkg/api"
)

// withQuery appends encoded params to endpoint when there are any
func withQuery(endpoint string, params url.Values) string {
	if len(params) == 0 {
		return endpoint
	}
	return endpoint + "?" + params.Encode()
}

// PublicProjects returns published projects.
// Known params: category, platform, sort, search.
func (c *Client) PublicProjects(ctx context.Context, params url.Values) ([]api.Project, error) {
	return call[[]api.Project](ctx, c, http.MethodGet, withQuery("/projects", params), nil)
}

// ProjectBySlug returns one published project
func (c *Client) ProjectBySlug(ctx context.Context, slug string) (*api.Project, error) {
	return call[*api.Project](ctx, c, http.MethodGet, "/projects/"+url.PathEscape(slug), nil)
}

// Company returns one company
func (c *Client) Company(ctx context.Context, id string) (*api.Company, error) {
	return call[*api.Company](ctx, c, http.MethodGet, "/companies/"+url.PathEscape(id), nil)
}

// Platforms returns the platform names known to the server
func (c *Client) Platforms(ctx context.Context) ([]string, error) {
	return call[[]string](ctx, c, http.MethodGet, "/platforms", nil)
}

// Reviews returns the reviews of a project
func (c *Client) Reviews(ctx context.Context, projectID string) ([]api.Review, error) {
	return call[[]api.Review](ctx, c, http.MethodGet, "/reviews/"+url.PathEscape(projectID)+"/reviews", nil)
}

// User returns one user profile
func (c *Client) User(ctx context.Context, id string) (*api.User, error) {
	return call[*api.User](ctx, c, http.MethodGet, "/users/"+url.PathEscape(id), nil)
}
