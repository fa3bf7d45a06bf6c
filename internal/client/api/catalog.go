package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/iudanet/devhub-admin/pkg/api"
)

// Categories returns all categories
func (c *Client) Categories(ctx context.Context) ([]api.Category, error) {
	return call[[]api.Category](ctx, c, http.MethodGet, "/categories", nil)
}

// CategoriesWithRoles returns all categories with their roles populated
func (c *Client) CategoriesWithRoles(ctx context.Context) ([]api.Category, error) {
	return call[[]api.Category](ctx, c, http.MethodGet, "/categories/with-roles", nil)
}

// Category returns one category
func (c *Client) Category(ctx context.Context, id string) (*api.Category, error) {
	return call[*api.Category](ctx, c, http.MethodGet, "/categories/"+url.PathEscape(id), nil)
}

// Roles returns all roles
func (c *Client) Roles(ctx context.Context) ([]api.Role, error) {
	return call[[]api.Role](ctx, c, http.MethodGet, "/roles", nil)
}

// RolesByCategory returns the roles of a category by id
func (c *Client) RolesByCategory(ctx context.Context, categoryID string) ([]api.Role, error) {
	return call[[]api.Role](ctx, c, http.MethodGet, "/roles/by-category/"+url.PathEscape(categoryID), nil)
}

// RolesByCategoryCode returns the roles of a category by code
func (c *Client) RolesByCategoryCode(ctx context.Context, code string) ([]api.Role, error) {
	return call[[]api.Role](ctx, c, http.MethodGet, "/roles/by-category-code/"+url.PathEscape(code), nil)
}

// Role returns one role
func (c *Client) Role(ctx context.Context, id string) (*api.Role, error) {
	return call[*api.Role](ctx, c, http.MethodGet, "/roles/"+url.PathEscape(id), nil)
}

// ValidateRoles checks role codes against the catalog
func (c *Client) ValidateRoles(ctx context.Context, codes []string) (*api.ValidateRolesResponse, error) {
	return call[*api.ValidateRolesResponse](ctx, c, http.MethodPost, "/roles/validate",
		api.ValidateRolesRequest{Codes: codes})
}

// CreateCategory creates a category
func (c *Client) CreateCategory(ctx context.Context, req api.CategoryRequest) (*api.Category, error) {
	return protected[*api.Category](ctx, c, http.MethodPost, "/categories", req)
}

// UpdateCategory updates a category
func (c *Client) UpdateCategory(ctx context.Context, id string, req api.CategoryRequest) (*api.Category, error) {
	return protected[*api.Category](ctx, c, http.MethodPut, "/categories/"+url.PathEscape(id), req)
}

// DeleteCategory deletes a category
func (c *Client) DeleteCategory(ctx context.Context, id string) (*api.MessageResponse, error) {
	return protected[*api.MessageResponse](ctx, c, http.MethodDelete, "/categories/"+url.PathEscape(id), nil)
}

// CreateRole creates a role
func (c *Client) CreateRole(ctx context.Context, req api.RoleRequest) (*api.Role, error) {
	return protected[*api.Role](ctx, c, http.MethodPost, "/roles", req)
}

// UpdateRole updates a role
func (c *Client) UpdateRole(ctx context.Context, id string, req api.RoleRequest) (*api.Role, error) {
	return protected[*api.Role](ctx, c, http.MethodPut, "/roles/"+url.PathEscape(id), req)
}

// DeleteRole deletes a role
func (c *Client) DeleteRole(ctx context.Context, id string) (*api.MessageResponse, error) {
	return protected[*api.MessageResponse](ctx, c, http.MethodDelete, "/roles/"+url.PathEscape(id), nil)
}

// SeedCatalog fills the default categories and roles
func (c *Client) SeedCatalog(ctx context.Context) (*api.MessageResponse, error) {
	return protected[*api.MessageResponse](ctx, c, http.MethodPost, "/seed", nil)
}
