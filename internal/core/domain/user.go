package domain

import (
	"time"
)

// Role is the single role assigned to an identity. The set is closed.
type Role string

const (
	RoleUser      Role = "ROLE_USER"
	RoleRecruiter Role = "ROLE_RECRUITER"
	RoleAdmin     Role = "ROLE_ADMIN"
)

// Roles lists every valid role in declaration order.
var Roles = []Role{RoleUser, RoleRecruiter, RoleAdmin}

// ParseRole converts a wire value into a Role. Matching is exact.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// User models an identity able to authenticate against the API.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the security context bound to an authenticated request.
type Principal struct {
	Subject string
	Role    Role
}
