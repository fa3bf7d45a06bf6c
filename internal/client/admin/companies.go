package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iudanet/devhub-admin/internal/client/api"
	"github.com/iudanet/devhub-admin/internal/client/notify"
	pkgapi "github.com/iudanet/devhub-admin/pkg/api"
)

// Member count buckets of the companies filter
const (
	MembersOne     = "1"
	MembersSmall   = "2-5"
	MembersLarge   = "6+"
	MembersAnySize = ""
)

var (
	// ErrMemberNotFound is returned when the user is not a member of the company
	ErrMemberNotFound = errors.New("member not found")
	// ErrOwnerRemoval is returned on an attempt to remove the company owner
	ErrOwnerRemoval = errors.New("the company owner cannot be removed")
	// ErrUnknownBucket is returned for an unknown member count bucket
	ErrUnknownBucket = errors.New("unknown members filter")
)

// CompanyFilter selects companies. Empty fields match everything.
type CompanyFilter struct {
	// Search is a case-insensitive substring of the name or the owner username
	Search string
	// Members is one of MembersOne, MembersSmall, MembersLarge
	Members string
}

// Validate checks the member bucket
func (f CompanyFilter) Validate() error {
	switch f.Members {
	case MembersAnySize, MembersOne, MembersSmall, MembersLarge:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBucket, f.Members)
	}
}

// Match reports whether c passes the filter
func (f CompanyFilter) Match(c pkgapi.Company) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		owner := ""
		if c.OwnerID != nil {
			owner = c.OwnerID.Username
		}
		if !strings.Contains(strings.ToLower(c.Name), q) && !strings.Contains(strings.ToLower(owner), q) {
			return false
		}
	}

	n := len(c.Members)
	switch f.Members {
	case MembersOne:
		return n == 1
	case MembersSmall:
		return n >= 2 && n <= 5
	case MembersLarge:
		return n >= 6
	}
	return true
}

// FilterCompanies returns the companies that pass f, in order
func FilterCompanies(companies []pkgapi.Company, f CompanyFilter) []pkgapi.Company {
	out := make([]pkgapi.Company, 0, len(companies))
	for _, c := range companies {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}

// FindMember returns the member with userID
func FindMember(c *pkgapi.Company, userID string) (pkgapi.CompanyMember, bool) {
	for _, m := range c.Members {
		if m.ID() == userID {
			return m, true
		}
	}
	return pkgapi.CompanyMember{}, false
}

// Companies backs the companies page
type Companies struct {
	base
}

// NewCompanies creates the companies service
func NewCompanies(client *api.Client, notifier notify.Notifier, logger *slog.Logger) *Companies {
	return &Companies{base: newBase(client, notifier, logger)}
}

// List loads companies and applies f
func (s *Companies) List(ctx context.Context, f CompanyFilter) ([]pkgapi.Company, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	companies, err := s.client.Companies(ctx, nil)
	if err != nil {
		return nil, s.fail("Failed to load companies", err)
	}
	if companies == nil {
		return nil, nil
	}
	return FilterCompanies(companies, f), nil
}

// Get loads one company
func (s *Companies) Get(ctx context.Context, id string) (*pkgapi.Company, error) {
	company, err := s.client.Company(ctx, id)
	if err != nil {
		return nil, s.fail("Failed to load company", err)
	}
	return company, nil
}

// Rankings loads companies ordered by ranking
func (s *Companies) Rankings(ctx context.Context) ([]pkgapi.Company, error) {
	companies, err := s.client.CompanyRankings(ctx)
	if err != nil {
		return nil, s.fail("Failed to load rankings", err)
	}
	return companies, nil
}

// Verify sets or clears the verified badge
func (s *Companies) Verify(ctx context.Context, id string, verified bool) error {
	company, err := s.client.VerifyCompany(ctx, id, verified)
	if err != nil {
		return s.fail("Failed to update verification", err)
	}
	if company == nil {
		return nil
	}
	if verified {
		s.success("Company verified")
	} else {
		s.success("Verification removed")
	}
	return nil
}

// Delete deletes a company with its projects
func (s *Companies) Delete(ctx context.Context, id string) error {
	resp, err := s.client.DeleteCompany(ctx, id)
	if err != nil {
		return s.fail("Failed to delete company", err)
	}
	if resp != nil {
		s.success("Company deleted")
	}
	return nil
}

// UpdateMemberRoles replaces the roles of a member
func (s *Companies) UpdateMemberRoles(ctx context.Context, companyID, userID string, roles []string) error {
	company, err := s.client.Company(ctx, companyID)
	if err != nil {
		return s.fail("Failed to load company", err)
	}
	if company == nil {
		return nil
	}
	if _, ok := FindMember(company, userID); !ok {
		return s.fail("Failed to update roles", ErrMemberNotFound)
	}

	updated, err := s.client.UpdateMemberRoles(ctx, companyID, userID, roles)
	if err != nil {
		return s.fail("Failed to update roles", err)
	}
	if updated != nil {
		s.success("Roles updated")
	}
	return nil
}

// RemoveMember removes a member. The owner cannot be removed.
func (s *Companies) RemoveMember(ctx context.Context, companyID, userID string) error {
	company, err := s.client.Company(ctx, companyID)
	if err != nil {
		return s.fail("Failed to load company", err)
	}
	if company == nil {
		return nil
	}

	member, ok := FindMember(company, userID)
	if !ok {
		return s.fail("Failed to remove member", ErrMemberNotFound)
	}
	if member.IsOwner() {
		return s.fail("Failed to remove member", ErrOwnerRemoval)
	}

	resp, err := s.client.RemoveMember(ctx, companyID, userID)
	if err != nil {
		return s.fail("Failed to remove member", err)
	}
	if resp != nil {
		s.success("Member removed")
	}
	return nil
}
