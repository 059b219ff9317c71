package ports

import (
	"context"

	"github.com/smartjob/job-board/internal/core/domain"
)

// JobRepository persists jobs together with their skill references.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	// List returns jobs newest first.
	List(ctx context.Context) ([]*domain.Job, error)
}

// ProfileRepository persists profiles. A user owns at most one profile: Create
// returns domain.ErrProfileExists otherwise.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}
