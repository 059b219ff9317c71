package ports

import (
	"context"

	"github.com/smartjob/job-board/internal/core/domain"
)

// SkillRepository is the backing store of the skill registry. The store enforces name
// uniqueness; Create must report a lost race as domain.ErrSkillExists.
type SkillRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Skill, error)
	Create(ctx context.Context, name string) (*domain.Skill, error)
}

// SkillCache is an optional read-through cache in front of SkillRepository.
// A miss is (nil, nil).
type SkillCache interface {
	Get(ctx context.Context, name string) (*domain.Skill, error)
	Put(ctx context.Context, skill *domain.Skill) error
}
