package sqlstore

import (
	"time"

	"github.com/smartjob/job-board/internal/core/domain"
)

type userModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"size:191;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:100;not null"`
	Role         string `gorm:"size:32;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

type skillModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:191;not null;uniqueIndex"`
	CreatedAt time.Time
}

func (skillModel) TableName() string { return "skills" }

func (m *skillModel) toDomain() *domain.Skill {
	return &domain.Skill{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt.UTC()}
}

type jobModel struct {
	ID            string `gorm:"primaryKey;size:36"`
	Title         string `gorm:"size:255;not null"`
	Company       string `gorm:"size:255"`
	Description   string `gorm:"type:text"`
	MinExperience int
	Location      string `gorm:"size:255"`
	SalaryMin     int
	SalaryMax     int
	PostedAt      time.Time `gorm:"index"`
	PostedBy      string    `gorm:"size:191"`
}

func (jobModel) TableName() string { return "jobs" }

// jobSkillModel links a job to a skill. Position keeps the order in which the
// skills were submitted.
type jobSkillModel struct {
	JobID    string `gorm:"primaryKey;size:36"`
	SkillID  string `gorm:"primaryKey;size:36;index"`
	Position int
}

func (jobSkillModel) TableName() string { return "job_skills" }

type profileModel struct {
	ID              string `gorm:"primaryKey;size:36"`
	UserID          string `gorm:"size:36;not null;uniqueIndex"`
	Name            string `gorm:"size:255"`
	YearsExperience int
	Location        string `gorm:"size:255"`
	DesiredSalary   int
	CreatedAt       time.Time
}

func (profileModel) TableName() string { return "profiles" }

type profileSkillModel struct {
	ProfileID string `gorm:"primaryKey;size:36"`
	SkillID   string `gorm:"primaryKey;size:36;index"`
	Position  int
}

func (profileSkillModel) TableName() string { return "profile_skills" }

// skillRow is the projection of a link row joined with its skill.
type skillRow struct {
	OwnerID string
	ID      string
	Name    string
}
