package api

// Category groups roles (e.g. "Development" with "Backend", "Frontend")
type Category struct {
	ID          string `json:"_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Roles       []Role `json:"roles,omitempty"`
}

// Role is a member role code that belongs to a category
type Role struct {
	ID          string `json:"_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CategoryID  string `json:"categoryId,omitempty"`
}

// CategoryRequest creates or updates a category
type CategoryRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RoleRequest creates or updates a role
type RoleRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CategoryID  string `json:"categoryId"`
}

// ValidateRolesRequest checks a list of role codes
type ValidateRolesRequest struct {
	Codes []string `json:"codes"`
}

// ValidateRolesResponse reports which role codes are unknown
type ValidateRolesResponse struct {
	Invalid []string `json:"invalid"`
	Valid   bool     `json:"valid"`
}
