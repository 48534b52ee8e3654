package domain

import (
	"context"
	"time"
)

// Job type options
const (
	JobTypeFullTime   = "Full-Time"
	JobTypePartTime   = "Part-Time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
	JobTypeRemote     = "Remote"
)

// Experience level options
const (
	ExperienceEntry    = "Entry Level"
	ExperienceMid      = "Mid Level"
	ExperienceSenior   = "Senior Level"
	ExperienceManager  = "Manager"
	ExperienceDirector = "Director"
)

type Job struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	Salary          float64   `json:"salary"`
	Location        string    `json:"location"`
	JobType         string    `json:"jobType"`
	ExperienceLevel string    `json:"experienceLevel"`
	Position        int       `json:"position"`
	CompanyID       int64     `json:"companyId"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Joined data. Company is filled on reads; Applications is derived
	// from the application ledger, not stored on the job row.
	Company      *CompanySummary `json:"company,omitempty"`
	Applications []Application   `json:"applications,omitempty"`
}

// CompanySummary is the slice of company data embedded in job listings.
type CompanySummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LogoURL  string `json:"logo,omitempty"`
	Location string `json:"location,omitempty"`
}

// UpdateJobInput is a partial update; nil/empty fields stay unchanged.
type UpdateJobInput struct {
	Title           string
	Description     string
	Requirements    []string
	Salary          *float64
	Location        string
	JobType         string
	ExperienceLevel string
	Position        *int
	CompanyID       *int64
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	// GetDetail expands the company summary. Applications are joined in
	// by the usecase from the application ledger.
	GetDetail(ctx context.Context, id int64) (*Job, error)
	// Search matches keyword case-insensitively against title or
	// description; empty keyword matches all. Newest first.
	Search(ctx context.Context, keyword string) ([]Job, error)
	FetchByCreator(ctx context.Context, userID string) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	PostJob(ctx context.Context, creatorID string, job *Job) error
	Search(ctx context.Context, keyword string) ([]Job, error)
	GetDetails(ctx context.Context, id int64) (*Job, error)
	ListByCreator(ctx context.Context, userID string) ([]Job, error)
	UpdateJob(ctx context.Context, callerID, role string, id int64, input UpdateJobInput) (*Job, error)
	DeleteJob(ctx context.Context, callerID, role string, id int64) error
}
