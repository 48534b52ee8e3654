package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{applicationRepo: appRepo, jobRepo: jobRepo}
}

func (uc *applicationUsecase) Apply(ctx context.Context, jobID int64, callerID string) (*domain.Application, error) {
	if _, err := uc.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found.")
		}
		return nil, apperror.Internal(err)
	}

	exists, err := uc.applicationRepo.CheckExists(ctx, jobID, callerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.BadRequest("You have already applied for this job.")
	}

	now := time.Now()
	app := &domain.Application{
		JobID:       jobID,
		ApplicantID: callerID,
		Status:      domain.ApplicationStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		// Concurrent applies race past CheckExists; the unique
		// constraint settles it.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.BadRequest("You have already applied for this job.")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

func (uc *applicationUsecase) ListAppliedJobs(ctx context.Context, callerID string) ([]domain.Application, error) {
	apps, err := uc.applicationRepo.GetByApplicant(ctx, callerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	return apps, nil
}

// ListApplicants returns the job with its applications expanded with
// applicant profiles. Only the posting recruiter or an admin may see
// who applied.
func (uc *applicationUsecase) ListApplicants(ctx context.Context, jobID int64, callerID, role string) (*domain.Job, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found.")
		}
		return nil, apperror.Internal(err)
	}
	if job.CreatedBy != callerID && role != domain.RoleAdmin {
		return nil, apperror.Forbidden("You are not allowed to view applicants for this job.")
	}

	apps, err := uc.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	job.Applications = apps
	return job, nil
}

func (uc *applicationUsecase) UpdateStatus(ctx context.Context, applicationID int64, status, callerID, role string) error {
	if status == "" {
		return apperror.BadRequest("Status is required.")
	}
	if !domain.ValidApplicationStatus(status) {
		return apperror.BadRequest("Invalid status. Must be: Pending, Accepted, or Rejected.")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found.")
		}
		return apperror.Internal(err)
	}

	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found.")
		}
		return apperror.Internal(err)
	}
	if job.CreatedBy != callerID && role != domain.RoleAdmin {
		return apperror.Forbidden("You are not allowed to update this application.")
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found.")
		}
		return apperror.Internal(err)
	}
	return nil
}
