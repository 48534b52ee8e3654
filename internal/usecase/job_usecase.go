package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo         domain.JobRepository
	companyRepo     domain.CompanyRepository
	applicationRepo domain.ApplicationRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository, appRepo domain.ApplicationRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, companyRepo: companyRepo, applicationRepo: appRepo}
}

func (uc *jobUsecase) PostJob(ctx context.Context, creatorID string, job *domain.Job) error {
	if job.Salary < 0 {
		return apperror.BadRequest("Salary must be non-negative.")
	}
	if job.Position < 1 {
		return apperror.BadRequest("Position must be at least 1.")
	}

	// The posting must hang off a company owned by the caller.
	company, err := uc.companyRepo.GetByID(ctx, job.CompanyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found.")
		}
		return apperror.Internal(err)
	}
	if company.UserID != creatorID {
		return apperror.NotFound("Company not found or not authorized.")
	}

	now := time.Now()
	job.CreatedBy = creatorID
	job.CreatedAt = now
	job.UpdatedAt = now

	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *jobUsecase) Search(ctx context.Context, keyword string) ([]domain.Job, error) {
	jobs, err := uc.jobRepo.Search(ctx, keyword)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}

// GetDetails returns the job with its company summary and its
// applications, each expanded with the applicant's identity.
func (uc *jobUsecase) GetDetails(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := uc.jobRepo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found.")
		}
		return nil, apperror.Internal(err)
	}

	apps, err := uc.applicationRepo.GetByJobID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	job.Applications = apps
	return job, nil
}

func (uc *jobUsecase) ListByCreator(ctx context.Context, userID string) ([]domain.Job, error) {
	jobs, err := uc.jobRepo.FetchByCreator(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}

func (uc *jobUsecase) UpdateJob(ctx context.Context, callerID, role string, id int64, input domain.UpdateJobInput) (*domain.Job, error) {
	if input.Salary != nil && *input.Salary < 0 {
		return nil, apperror.BadRequest("Salary must be non-negative.")
	}
	if input.Position != nil && *input.Position < 1 {
		return nil, apperror.BadRequest("Position must be at least 1.")
	}

	job, err := uc.ownedJob(ctx, callerID, role, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		job.Title = input.Title
	}
	if input.Description != "" {
		job.Description = input.Description
	}
	if input.Requirements != nil {
		job.Requirements = input.Requirements
	}
	if input.Salary != nil {
		job.Salary = *input.Salary
	}
	if input.Location != "" {
		job.Location = input.Location
	}
	if input.JobType != "" {
		job.JobType = input.JobType
	}
	if input.ExperienceLevel != "" {
		job.ExperienceLevel = input.ExperienceLevel
	}
	if input.Position != nil {
		job.Position = *input.Position
	}
	if input.CompanyID != nil && *input.CompanyID != job.CompanyID {
		company, err := uc.companyRepo.GetByID(ctx, *input.CompanyID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("Company not found.")
			}
			return nil, apperror.Internal(err)
		}
		if company.UserID != callerID && role != domain.RoleAdmin {
			return nil, apperror.NotFound("Company not found or not authorized.")
		}
		job.CompanyID = *input.CompanyID
	}
	job.UpdatedAt = time.Now()

	if err := uc.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found.")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (uc *jobUsecase) DeleteJob(ctx context.Context, callerID, role string, id int64) error {
	if _, err := uc.ownedJob(ctx, callerID, role, id); err != nil {
		return err
	}
	if err := uc.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found.")
		}
		return apperror.Internal(err)
	}
	return nil
}

// ownedJob loads the job and checks the caller may modify it: the
// posting recruiter or an admin.
func (uc *jobUsecase) ownedJob(ctx context.Context, callerID, role string, id int64) (*domain.Job, error) {
	job, err := uc.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found.")
		}
		return nil, apperror.Internal(err)
	}
	if job.CreatedBy != callerID && role != domain.RoleAdmin {
		return nil, apperror.Forbidden("You are not allowed to modify this job.")
	}
	return job, nil
}
