package domain

import "time"

// Job is a posted vacancy.
type Job struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Company       string     `json:"company"`
	Description   string     `json:"description"`
	MinExperience int        `json:"min_experience"`
	Location      string     `json:"location"`
	SalaryMin     int        `json:"salary_min"`
	SalaryMax     int        `json:"salary_max"`
	PostedAt      time.Time  `json:"posted_at"`
	PostedBy      string     `json:"posted_by,omitempty"`
	Skills        []SkillRef `json:"skills"`
}

// Profile is a candidate profile. Exactly one per user.
type Profile struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Name            string     `json:"name"`
	YearsExperience int        `json:"years_experience"`
	Location        string     `json:"location"`
	DesiredSalary   int        `json:"desired_salary"`
	CreatedAt       time.Time  `json:"created_at"`
	Skills          []SkillRef `json:"skills"`
}
