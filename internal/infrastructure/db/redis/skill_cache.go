package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smartjob/job-board/internal/core/domain"
)

const defaultSkillTTL = time.Hour

// SkillCache keeps resolved skills keyed by exact name.
// Key format: skill:name:<name>
type SkillCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSkillCache wraps client. A non-positive ttl selects one hour.
func NewSkillCache(client *redis.Client, ttl time.Duration) *SkillCache {
	if ttl <= 0 {
		ttl = defaultSkillTTL
	}
	return &SkillCache{client: client, ttl: ttl}
}

// Get returns (nil, nil) on a miss.
func (c *SkillCache) Get(ctx context.Context, name string) (*domain.Skill, error) {
	raw, err := c.client.Get(ctx, c.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("skill cache get: %w", err)
	}

	var skill domain.Skill
	if err := json.Unmarshal(raw, &skill); err != nil {
		return nil, fmt.Errorf("skill cache decode: %w", err)
	}
	return &skill, nil
}

func (c *SkillCache) Put(ctx context.Context, skill *domain.Skill) error {
	raw, err := json.Marshal(skill)
	if err != nil {
		return fmt.Errorf("skill cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(skill.Name), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("skill cache set: %w", err)
	}
	return nil
}

func (c *SkillCache) key(name string) string {
	return "skill:name:" + name
}
