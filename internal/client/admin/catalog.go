package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/devhub-admin/internal/client/api"
	"github.com/iudanet/devhub-admin/internal/client/notify"
	"github.com/iudanet/devhub-admin/internal/validation"
	pkgapi "github.com/iudanet/devhub-admin/pkg/api"
)

// Catalog backs the categories and roles page
type Catalog struct {
	base
}

// NewCatalog creates the catalog service
func NewCatalog(client *api.Client, notifier notify.Notifier, logger *slog.Logger) *Catalog {
	return &Catalog{base: newBase(client, notifier, logger)}
}

// Categories loads every category with its roles
func (s *Catalog) Categories(ctx context.Context) ([]pkgapi.Category, error) {
	categories, err := s.client.CategoriesWithRoles(ctx)
	if err != nil {
		return nil, s.fail("Failed to load categories", err)
	}
	return categories, nil
}

// Roles loads the roles of a category, all roles when categoryID is empty
func (s *Catalog) Roles(ctx context.Context, categoryID string) ([]pkgapi.Role, error) {
	var (
		roles []pkgapi.Role
		err   error
	)
	if categoryID == "" {
		roles, err = s.client.Roles(ctx)
	} else {
		roles, err = s.client.RolesByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, s.fail("Failed to load roles", err)
	}
	return roles, nil
}

func validateCatalogEntry(code, name string) error {
	if err := validation.ValidateCatalogCode(code); err != nil {
		return fmt.Errorf("invalid code: %w", err)
	}
	if err := validation.ValidateCatalogName(name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}
	return nil
}

// SaveCategory creates a category, or updates it when id is set
func (s *Catalog) SaveCategory(ctx context.Context, id string, req pkgapi.CategoryRequest) (*pkgapi.Category, error) {
	if err := validateCatalogEntry(req.Code, req.Name); err != nil {
		return nil, err
	}

	if id != "" {
		category, err := s.client.UpdateCategory(ctx, id, req)
		if err != nil {
			return nil, s.fail("Error", err)
		}
		if category != nil {
			s.success("Category updated")
		}
		return category, nil
	}

	category, err := s.client.CreateCategory(ctx, req)
	if err != nil {
		return nil, s.fail("Error", err)
	}
	if category != nil {
		s.success("Category created")
	}
	return category, nil
}

// DeleteCategory deletes a category
func (s *Catalog) DeleteCategory(ctx context.Context, id string) error {
	resp, err := s.client.DeleteCategory(ctx, id)
	if err != nil {
		return s.fail("Error", err)
	}
	if resp != nil {
		s.success("Category deleted")
	}
	return nil
}

// SaveRole creates a role, or updates it when id is set
func (s *Catalog) SaveRole(ctx context.Context, id string, req pkgapi.RoleRequest) (*pkgapi.Role, error) {
	if err := validateCatalogEntry(req.Code, req.Name); err != nil {
		return nil, err
	}
	if req.CategoryID == "" {
		return nil, fmt.Errorf("category is required")
	}

	if id != "" {
		role, err := s.client.UpdateRole(ctx, id, req)
		if err != nil {
			return nil, s.fail("Error", err)
		}
		if role != nil {
			s.success("Role updated")
		}
		return role, nil
	}

	role, err := s.client.CreateRole(ctx, req)
	if err != nil {
		return nil, s.fail("Error", err)
	}
	if role != nil {
		s.success("Role created")
	}
	return role, nil
}

// DeleteRole deletes a role
func (s *Catalog) DeleteRole(ctx context.Context, id string) error {
	resp, err := s.client.DeleteRole(ctx, id)
	if err != nil {
		return s.fail("Error", err)
	}
	if resp != nil {
		s.success("Role deleted")
	}
	return nil
}

// Seed fills the default catalog
func (s *Catalog) Seed(ctx context.Context) error {
	resp, err := s.client.SeedCatalog(ctx)
	if err != nil {
		s.notifier.Notify(notify.LevelError, err.Error())
		return err
	}
	if resp == nil {
		return nil
	}
	msg := resp.Message
	if msg == "" {
		msg = "Catalog initialised"
	}
	s.success(msg)
	return nil
}
