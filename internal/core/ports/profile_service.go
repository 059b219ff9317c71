package ports

import (
	"context"

	"github.com/smartjob/job-board/internal/core/domain"
)

// CreateProfileInput carries the profile fields; the owner comes from the caller's identity.
type CreateProfileInput struct {
	OwnerEmail      string
	Name            string
	YearsExperience int
	Location        string
	DesiredSalary   int
	Skills          []string
}

// ProfileService defines use-case operations for profiles.
type ProfileService interface {
	CreateProfile(ctx context.Context, input CreateProfileInput) (*domain.Profile, error)
	GetProfile(ctx context.Context, id string) (*domain.Profile, error)
	GetProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}
