package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartjob/job-board/internal/core/domain"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create stores the profile with its skill links. The unique index on user_id
// reports a second profile for the same user as domain.ErrProfileExists.
func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	m := profileModel{
		ID:              uuid.NewString(),
		UserID:          profile.UserID,
		Name:            profile.Name,
		YearsExperience: profile.YearsExperience,
		Location:        profile.Location,
		DesiredSalary:   profile.DesiredSalary,
		CreatedAt:       profile.CreatedAt,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if len(profile.Skills) == 0 {
			return nil
		}
		links := make([]profileSkillModel, len(profile.Skills))
		for i, ref := range profile.Skills {
			links[i] = profileSkillModel{ProfileID: m.ID, SkillID: ref.ID, Position: i}
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrProfileExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}

	profile.ID = m.ID
	return nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	return r.first(ctx, "user_id = ?", userID)
}

func (r *ProfileRepository) first(ctx context.Context, query string, arg any) (*domain.Profile, error) {
	tx := r.db.WithContext(ctx)

	var m profileModel
	if err := tx.First(&m, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	refs, err := loadSkillRefs(tx, "profile_skills", "profile_id", []string{m.ID})
	if err != nil {
		return nil, err
	}

	return &domain.Profile{
		ID:              m.ID,
		UserID:          m.UserID,
		Name:            m.Name,
		YearsExperience: m.YearsExperience,
		Location:        m.Location,
		DesiredSalary:   m.DesiredSalary,
		CreatedAt:       m.CreatedAt.UTC(),
		Skills:          refsOrEmpty(refs[m.ID]),
	}, nil
}
