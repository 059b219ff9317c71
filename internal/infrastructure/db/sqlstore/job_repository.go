package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartjob/job-board/internal/core/domain"
)

// listLimit caps GET /api/jobs until pagination exists.
const listLimit = 200

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create stores the job and its skill links in one transaction and assigns the ID.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	m := jobModel{
		ID:            uuid.NewString(),
		Title:         job.Title,
		Company:       job.Company,
		Description:   job.Description,
		MinExperience: job.MinExperience,
		Location:      job.Location,
		SalaryMin:     job.SalaryMin,
		SalaryMax:     job.SalaryMax,
		PostedAt:      job.PostedAt,
		PostedBy:      job.PostedBy,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if len(job.Skills) == 0 {
			return nil
		}
		links := make([]jobSkillModel, len(job.Skills))
		for i, ref := range job.Skills {
			links[i] = jobSkillModel{JobID: m.ID, SkillID: ref.ID, Position: i}
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}

	job.ID = m.ID
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	tx := r.db.WithContext(ctx)

	var m jobModel
	if err := tx.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	refs, err := loadSkillRefs(tx, "job_skills", "job_id", []string{m.ID})
	if err != nil {
		return nil, err
	}
	return jobToDomain(&m, refs[m.ID]), nil
}

func (r *JobRepository) List(ctx context.Context) ([]*domain.Job, error) {
	tx := r.db.WithContext(ctx)

	var models []jobModel
	if err := tx.Order("posted_at DESC").Order("id").Limit(listLimit).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	ids := make([]string, len(models))
	for i := range models {
		ids[i] = models[i].ID
	}
	refs, err := loadSkillRefs(tx, "job_skills", "job_id", ids)
	if err != nil {
		return nil, err
	}

	jobs := make([]*domain.Job, len(models))
	for i := range models {
		jobs[i] = jobToDomain(&models[i], refs[models[i].ID])
	}
	return jobs, nil
}

func jobToDomain(m *jobModel, refs []domain.SkillRef) *domain.Job {
	return &domain.Job{
		ID:            m.ID,
		Title:         m.Title,
		Company:       m.Company,
		Description:   m.Description,
		MinExperience: m.MinExperience,
		Location:      m.Location,
		SalaryMin:     m.SalaryMin,
		SalaryMax:     m.SalaryMax,
		PostedAt:      m.PostedAt.UTC(),
		PostedBy:      m.PostedBy,
		Skills:        refsOrEmpty(refs),
	}
}
