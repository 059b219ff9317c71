package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartjob/job-board/internal/core/domain"
	"github.com/smartjob/job-board/internal/core/ports"
)

type ProfileService struct {
	repo   ports.ProfileRepository
	users  ports.IdentityRepository
	skills SkillResolver
	logger zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, users ports.IdentityRepository, skills SkillResolver, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, users: users, skills: skills, logger: logger}
}

// CreateProfile creates the caller's profile. The owner is the authenticated identity,
// never a client-supplied id.
func (s *ProfileService) CreateProfile(ctx context.Context, input ports.CreateProfileInput) (*domain.Profile, error) {
	owner, err := s.users.FindByEmail(ctx, normalizeEmail(input.OwnerEmail))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// The token outlived its identity.
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	if _, err := s.repo.FindByUserID(ctx, owner.ID); err == nil {
		return nil, domain.ErrProfileExists
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	refs, err := s.skills.ResolveOrCreate(ctx, input.Skills)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to resolve profile skills")
		return nil, err
	}

	profile := &domain.Profile{
		UserID:          owner.ID,
		Name:            input.Name,
		YearsExperience: input.YearsExperience,
		Location:        input.Location,
		DesiredSalary:   input.DesiredSalary,
		CreatedAt:       time.Now().UTC(),
		Skills:          refs,
	}

	// The store's unique index on user_id closes the window left by the check above.
	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info().Str("profile_id", profile.ID).Str("user_id", owner.ID).Msg("profile created")
	return profile, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProfileService) GetProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.repo.FindByUserID(ctx, userID)
}
