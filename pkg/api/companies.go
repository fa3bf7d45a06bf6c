package api

import (
	"bytes"
	"encoding/json"
	"time"
)

// Company is a team of users that owns projects
type Company struct {
	CreatedAt    time.Time         `json:"createdAt"`
	OwnerID      *UserRef          `json:"ownerId,omitempty"`
	ID           string            `json:"_id"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Photo        string            `json:"photo,omitempty"`
	Code         string            `json:"code,omitempty"`
	Members      []CompanyMember   `json:"members"`
	Projects     []json.RawMessage `json:"projects,omitempty"`
	Ranking      int               `json:"ranking,omitempty"`
	RankingScore float64           `json:"rankingScore,omitempty"`
	IsVerified   bool              `json:"isVerified"`
}

// CompanyRef is the populated short form of a company inside other documents
type CompanyRef struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
}

// UnmarshalJSON accepts both the populated object and a bare id string
func (r *CompanyRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}
	type plain CompanyRef
	return json.Unmarshal(data, (*plain)(r))
}

// CompanyMember links a user to a company with a set of role codes.
// UserID is either populated or a bare id, see UserRef.
type CompanyMember struct {
	UserID *UserRef `json:"userId,omitempty"`
	Roles  []string `json:"roles"`
}

// ID returns the member user id, "" when unknown
func (m CompanyMember) ID() string {
	if m.UserID == nil {
		return ""
	}
	return m.UserID.ID
}

// Username returns the member username, "" when not populated
func (m CompanyMember) Username() string {
	if m.UserID == nil {
		return ""
	}
	return m.UserID.Username
}

// MemberRoleOwner marks the member that created the company
const MemberRoleOwner = "Owner"

// IsOwner reports whether the member owns the company
func (m CompanyMember) IsOwner() bool {
	for _, r := range m.Roles {
		if r == MemberRoleOwner {
			return true
		}
	}
	return false
}

// CompanyRequest creates or updates a company
type CompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Photo       string `json:"photo,omitempty"`
}

// JoinCompanyRequest joins a company with an invite code
type JoinCompanyRequest struct {
	Code string `json:"code"`
}

// InviteCodeResponse carries a freshly generated invite code
type InviteCodeResponse struct {
	Code string `json:"code"`
}

// MemberRolesRequest replaces the roles of a company member
type MemberRolesRequest struct {
	Roles []string `json:"roles"`
}

// VerifyCompanyRequest toggles the verified badge
type VerifyCompanyRequest struct {
	IsVerified bool `json:"isVerified"`
}
