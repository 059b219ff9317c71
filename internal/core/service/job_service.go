package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartjob/job-board/internal/core/domain"
	"github.com/smartjob/job-board/internal/core/ports"
)

// SkillResolver turns skill names into persisted references.
type SkillResolver interface {
	ResolveOrCreate(ctx context.Context, names []string) ([]domain.SkillRef, error)
}

type JobService struct {
	repo   ports.JobRepository
	skills SkillResolver
	logger zerolog.Logger
}

func NewJobService(repo ports.JobRepository, skills SkillResolver, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, skills: skills, logger: logger}
}

// CreateJob resolves the skill list through the registry, then persists the job.
func (s *JobService) CreateJob(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	if input.SalaryMax > 0 && input.SalaryMin > input.SalaryMax {
		return nil, domain.ErrInvalidInput
	}

	refs, err := s.skills.ResolveOrCreate(ctx, input.Skills)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to resolve job skills")
		return nil, err
	}

	job := &domain.Job{
		Title:         input.Title,
		Company:       input.Company,
		Description:   input.Description,
		MinExperience: input.MinExperience,
		Location:      input.Location,
		SalaryMin:     input.SalaryMin,
		SalaryMax:     input.SalaryMax,
		PostedAt:      time.Now().UTC(),
		PostedBy:      input.PostedBy,
		Skills:        refs,
	}

	if err := s.repo.Create(ctx, job); err != nil {
		s.logger.Error().Err(err).Msg("failed to create job")
		return nil, err
	}

	s.logger.Info().Str("job_id", job.ID).Int("skills", len(refs)).Msg("job created")
	return job, nil
}

func (s *JobService) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *JobService) ListJobs(ctx context.Context) ([]*domain.Job, error) {
	return s.repo.List(ctx)
}
