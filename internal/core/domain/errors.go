package domain

import "errors"

// Authentication and authorization.
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

// Token validation failures. All of them surface as ErrUnauthenticated at the HTTP edge.
var (
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature invalid")
	ErrTokenExpired      = errors.New("token expired")
)

// Identities.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// Reference data. ErrSkillExists is the uniqueness conflict raised by a store when a
// concurrent writer created the same name first; it is recovered inside the registry.
var (
	ErrSkillNotFound     = errors.New("skill not found")
	ErrSkillExists       = errors.New("skill already exists")
	ErrSkillUnresolvable = errors.New("skill could not be resolved")
)

// Aggregates.
var (
	ErrJobNotFound     = errors.New("job not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists for user")
	ErrInvalidInput    = errors.New("invalid input")
)
