package session

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role claim required for management operations
const RoleAdmin = "admin"

// Claims is the payload segment of a session token.
// Only exp and role drive decisions; the rest is shown to the user.
type Claims struct {
	ID       string `json:"id,omitempty"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// parser decodes token segments; signatures are never verified,
// the client never holds the signing key.
var parser = jwt.NewParser()

// decodeClaims decodes the payload segment only. The header and signature
// are ignored, so an unknown or missing alg does not invalidate a session.
func decodeClaims(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 || parts[1] == "" {
		return nil, fmt.Errorf("token has no payload segment")
	}

	payload, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	claims := &Claims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, fmt.Errorf("failed to parse payload: %w", err)
	}

	return claims, nil
}
