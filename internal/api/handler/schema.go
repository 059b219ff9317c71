package handler

import (
	"github.com/smartjob/job-board/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Users ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email,max=191"`
	Password string `json:"password" validate:"required,min=3,max=72"`
	Role     string `json:"role"     validate:"required,oneof=ROLE_USER ROLE_RECRUITER ROLE_ADMIN"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresIn int64        `json:"expires_in"`
	User      *domain.User `json:"user"`
}

// --- Jobs ---

type createJobRequest struct {
	Title         string   `json:"title"          validate:"required,max=255"`
	Company       string   `json:"company"        validate:"max=255"`
	Description   string   `json:"description"`
	MinExperience int      `json:"min_experience" validate:"gte=0"`
	Location      string   `json:"location"       validate:"max=255"`
	SalaryMin     int      `json:"salary_min"     validate:"gte=0"`
	SalaryMax     int      `json:"salary_max"     validate:"gte=0"`
	Skills        []string `json:"skills"         validate:"max=50,dive,max=191"`
}

type listJobsResponse struct {
	Jobs  []*domain.Job `json:"jobs"`
	Count int           `json:"count"`
}

// --- Profiles ---

type createProfileRequest struct {
	Name            string   `json:"name"             validate:"required,max=255"`
	YearsExperience int      `json:"years_experience" validate:"gte=0"`
	Location        string   `json:"location"         validate:"max=255"`
	DesiredSalary   int      `json:"desired_salary"   validate:"gte=0"`
	Skills          []string `json:"skills"           validate:"max=50,dive,max=191"`
}
