package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartjob/job-board/internal/core/domain"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) FindByName(ctx context.Context, name string) (*domain.Skill, error) {
	var m skillModel
	if err := r.db.WithContext(ctx).First(&m, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, fmt.Errorf("find skill: %w", err)
	}
	return m.toDomain(), nil
}

// Create inserts a skill. The unique index on name reports a concurrent insert
// of the same name as domain.ErrSkillExists.
func (r *SkillRepository) Create(ctx context.Context, name string) (*domain.Skill, error) {
	m := skillModel{ID: uuid.NewString(), Name: name, CreatedAt: time.Now().UTC()}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrSkillExists
		}
		return nil, fmt.Errorf("insert skill: %w", err)
	}
	return m.toDomain(), nil
}

// loadSkillRefs returns the ordered skill references of every owner in ids,
// keyed by owner id.
func loadSkillRefs(tx *gorm.DB, linkTable, ownerColumn string, ids []string) (map[string][]domain.SkillRef, error) {
	out := make(map[string][]domain.SkillRef, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []skillRow
	err := tx.Table(linkTable + " AS l").
		Select("l." + ownerColumn + " AS owner_id, s.id AS id, s.name AS name").
		Joins("JOIN skills AS s ON s.id = l.skill_id").
		Where("l."+ownerColumn+" IN ?", ids).
		Order("l." + ownerColumn).
		Order("l.position").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load skills: %w", err)
	}

	for _, row := range rows {
		out[row.OwnerID] = append(out[row.OwnerID], domain.SkillRef{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func refsOrEmpty(refs []domain.SkillRef) []domain.SkillRef {
	if refs == nil {
		return []domain.SkillRef{}
	}
	return refs
}
