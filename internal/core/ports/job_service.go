package ports

import (
	"context"

	"github.com/smartjob/job-board/internal/core/domain"
)

// CreateJobInput is the DTO passed from the transport layer to JobService.
type CreateJobInput struct {
	Title         string
	Company       string
	Description   string
	MinExperience int
	Location      string
	SalaryMin     int
	SalaryMax     int
	Skills        []string
	PostedBy      string
}

// JobService defines use-case operations for jobs.
type JobService interface {
	CreateJob(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	GetJob(ctx context.Context, id string) (*domain.Job, error)
	ListJobs(ctx context.Context) ([]*domain.Job, error)
}
