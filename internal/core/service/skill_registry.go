package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/smartjob/job-board/internal/core/domain"
	"github.com/smartjob/job-board/internal/core/ports"
	"github.com/smartjob/job-board/internal/pkg/metrics"
)

// maxSkillAttempts bounds the lookup/create cycle for one name. Losing a create race
// costs one extra round; anything beyond that points at the store, not at contention.
const maxSkillAttempts = 3

// SkillRegistry turns free-text skill names into durable, deduplicated references.
// Uniqueness is enforced by the store, so the registry holds no locks and stays
// correct across replicas.
type SkillRegistry struct {
	repo  ports.SkillRepository
	cache ports.SkillCache
	log   zerolog.Logger
}

// NewSkillRegistry returns a registry over repo. cache may be nil.
func NewSkillRegistry(repo ports.SkillRepository, cache ports.SkillCache, log zerolog.Logger) *SkillRegistry {
	return &SkillRegistry{repo: repo, cache: cache, log: log}
}

// ResolveOrCreate returns one reference per distinct normalized name, in order of
// first occurrence. No store access happens for an empty set.
func (r *SkillRegistry) ResolveOrCreate(ctx context.Context, names []string) ([]domain.SkillRef, error) {
	normalized := domain.NormalizeSkillNames(names)
	if len(normalized) == 0 {
		return []domain.SkillRef{}, nil
	}

	refs := make([]domain.SkillRef, 0, len(normalized))
	for _, name := range normalized {
		skill, err := r.resolve(ctx, name)
		if err != nil {
			return nil, err
		}
		refs = append(refs, skill.Ref())
	}
	return refs, nil
}

func (r *SkillRegistry) resolve(ctx context.Context, name string) (*domain.Skill, error) {
	if skill := r.cached(ctx, name); skill != nil {
		metrics.SkillResolutionsTotal.WithLabelValues("cache_hit").Inc()
		return skill, nil
	}

	for attempt := 1; attempt <= maxSkillAttempts; attempt++ {
		skill, err := r.repo.FindByName(ctx, name)
		switch {
		case err == nil:
			metrics.SkillResolutionsTotal.WithLabelValues("found").Inc()
			r.remember(ctx, skill)
			return skill, nil
		case !errors.Is(err, domain.ErrSkillNotFound):
			return nil, fmt.Errorf("resolve skill %q: %w", name, err)
		}

		skill, err = r.repo.Create(ctx, name)
		switch {
		case err == nil:
			metrics.SkillResolutionsTotal.WithLabelValues("created").Inc()
			r.log.Debug().Str("skill", name).Str("id", skill.ID).Msg("skill created")
			r.remember(ctx, skill)
			return skill, nil
		case errors.Is(err, domain.ErrSkillExists):
			// A concurrent writer won; the next lookup sees its record.
			metrics.SkillResolutionsTotal.WithLabelValues("conflict").Inc()
			r.log.Debug().Str("skill", name).Int("attempt", attempt).Msg("skill create lost race, re-reading")
		default:
			return nil, fmt.Errorf("create skill %q: %w", name, err)
		}
	}

	r.log.Error().Str("skill", name).Int("attempts", maxSkillAttempts).Msg("skill unresolvable after retries")
	return nil, fmt.Errorf("%w: %q", domain.ErrSkillUnresolvable, name)
}

// cached consults the optional cache. Cache failures degrade to a store lookup.
func (r *SkillRegistry) cached(ctx context.Context, name string) *domain.Skill {
	if r.cache == nil {
		return nil
	}
	skill, err := r.cache.Get(ctx, name)
	if err != nil {
		r.log.Warn().Err(err).Str("skill", name).Msg("skill cache read failed, falling back to store")
		return nil
	}
	return skill
}

func (r *SkillRegistry) remember(ctx context.Context, skill *domain.Skill) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Put(ctx, skill); err != nil {
		r.log.Warn().Err(err).Str("skill", skill.Name).Msg("skill cache write failed")
	}
}
