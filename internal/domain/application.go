package domain

import (
	"context"
	"time"
)

// Application status values. Any of the three may be set via a status
// update; there is no enforced transition order.
const (
	ApplicationStatusPending  = "Pending"
	ApplicationStatusAccepted = "Accepted"
	ApplicationStatusRejected = "Rejected"
)

// ValidApplicationStatus reports whether s is one of the known statuses.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application links a job and an applicant. At most one application may
// exist per (job, applicant) pair; the storage layer enforces this with
// a compound unique constraint.
type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"jobId"`
	ApplicantID string    `json:"applicantId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined data for list responses
	Job       *Job  `json:"job,omitempty"`
	Applicant *User `json:"applicant,omitempty"`
}

type ApplicationRepository interface {
	// Create inserts the application. A duplicate (job, applicant)
	// pair surfaces as ErrDuplicate via the unique constraint.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	// GetByApplicant expands each application with its job and that
	// job's company, newest first.
	GetByApplicant(ctx context.Context, userID string) ([]Application, error)
	// GetByJobID expands each application with its applicant, newest
	// first.
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	CheckExists(ctx context.Context, jobID int64, userID string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID int64, callerID string) (*Application, error)
	ListAppliedJobs(ctx context.Context, callerID string) ([]Application, error)
	// ListApplicants returns the job expanded with its applications,
	// newest application first. Caller must own the job or be admin.
	ListApplicants(ctx context.Context, jobID int64, callerID, role string) (*Job, error)
	UpdateStatus(ctx context.Context, applicationID int64, status, callerID, role string) error
}
