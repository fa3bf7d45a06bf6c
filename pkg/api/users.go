package api

import (
	"bytes"
	"encoding/json"
	"time"
)

// User is an account as returned by /admin/users and /users/:id
type User struct {
	CreatedAt      time.Time `json:"createdAt"`
	ID             string    `json:"_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Contacts       *Contacts `json:"contacts,omitempty"`
	Photo          string    `json:"photo,omitempty"`
	ProjectsCount  int       `json:"projectsCount"`
	CompaniesCount int       `json:"companiesCount"`
	IsVerified     bool      `json:"isVerified,omitempty"`
}

// Contacts are the optional public contacts of a user
type Contacts struct {
	Email    string `json:"email,omitempty"`
	Discord  string `json:"discord,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
}

// UserRef is the populated short form of a user inside other documents
type UserRef struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// UnmarshalJSON accepts both the populated object and a bare id string
func (r *UserRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}
	type plain UserRef
	return json.Unmarshal(data, (*plain)(r))
}

// ResetUserPasswordRequest is the optional body of /admin/users/:id/reset-password
type ResetUserPasswordRequest struct {
	Email string `json:"email,omitempty"`
}
