package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type adminUsecase struct {
	adminRepo domain.AdminRepository
}

func NewAdminUsecase(adminRepo domain.AdminRepository) domain.AdminUsecase {
	return &adminUsecase{adminRepo: adminRepo}
}

// requireModerator gates panel operations on the role the auth layer
// stored in the context. Recruiters and admins pass.
// Works with both Gin context (c.Set) and standard context.WithValue.
func requireModerator(ctx context.Context) error {
	role, _ := ctx.Value(string(domain.KeyUserRole)).(string)
	if role == "" {
		role, _ = ctx.Value(domain.KeyUserRole).(string)
	}
	if role != domain.RoleRecruiter && role != domain.RoleAdmin {
		return apperror.Forbidden("Admin panel access requires a recruiter or admin account.")
	}
	return nil
}

func mapAdminErr(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(notFoundMsg)
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return apperror.Conflict("A record with these details already exists.")
	}
	return apperror.Internal(err)
}

func (uc *adminUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := requireModerator(ctx); err != nil {
		return nil, err
	}
	users, err := uc.adminRepo.ListUsers(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (uc *adminUsecase) UpdateUser(ctx context.Context, id string, in *domain.AdminUserInput) error {
	if err := requireModerator(ctx); err != nil {
		return err
	}
	if in.Role != "" && in.Role != domain.RoleJobseeker && in.Role != domain.RoleRecruiter && in.Role != domain.RoleAdmin {
		return apperror.BadRequest("Invalid role. Must be: jobseeker, recruiter, or admin.")
	}
	// Emails are stored lowercase; login lowercases its input, so a
	// mixed-case email set here would strand the account.
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	return mapAdminErr(uc.adminRepo.UpdateUser(ctx, id, in), "User not found.")
}

func (uc *adminUsecase) DeleteUser(ctx context.Context, id string) error {
	if err := requireModerator(ctx); err != nil {
		return err
	}
	return mapAdminErr(uc.adminRepo.DeleteUser(ctx, id), "User not found.")
}

func (uc *adminUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	if err := requireModerator(ctx); err != nil {
		return nil, err
	}
	jobs, err := uc.adminRepo.ListJobs(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}

func (uc *adminUsecase) UpdateJob(ctx context.Context, id int64, in *domain.AdminJobInput) error {
	if err := requireModerator(ctx); err != nil {
		return err
	}
	if in.Salary != nil && *in.Salary < 0 {
		return apperror.BadRequest("Salary must be non-negative.")
	}
	if in.Position != nil && *in.Position < 1 {
		return apperror.BadRequest("Position must be at least 1.")
	}
	return mapAdminErr(uc.adminRepo.UpdateJob(ctx, id, in), "Job not found.")
}

func (uc *adminUsecase) DeleteJob(ctx context.Context, id int64) error {
	if err := requireModerator(ctx); err != nil {
		return err
	}
	return mapAdminErr(uc.adminRepo.DeleteJob(ctx, id), "Job not found.")
}

func (uc *adminUsecase) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	if err := requireModerator(ctx); err != nil {
		return nil, err
	}
	companies, err := uc.adminRepo.ListCompanies(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if companies == nil {
		companies = []domain.Company{}
	}
	return companies, nil
}

func (uc *adminUsecase) UpdateCompany(ctx context.Context, id int64, in *domain.AdminCompanyInput) error {
	if err := requireModerator(ctx); err != nil {
		return err
	}
	return mapAdminErr(uc.adminRepo.UpdateCompany(ctx, id, in), "Company not found.")
}

func (uc *adminUsecase) DeleteCompany(ctx context.Context, id int64) error {
	if err := requireModerator(ctx); err != nil {
		return err
	}
	return mapAdminErr(uc.adminRepo.DeleteCompany(ctx, id), "Company not found.")
}

func (uc *adminUsecase) ListApplications(ctx context.Context) ([]domain.Application, error) {
	if err := requireModerator(ctx); err != nil {
		return nil, err
	}
	apps, err := uc.adminRepo.ListApplications(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	return apps, nil
}

func (uc *adminUsecase) UpdateApplication(ctx context.Context, id int64, in *domain.AdminApplicationInput) error {
	if err := requireModerator(ctx); err != nil {
		return err
	}
	if in.Status != "" && !domain.ValidApplicationStatus(in.Status) {
		return apperror.BadRequest("Invalid status. Must be: Pending, Accepted, or Rejected.")
	}
	return mapAdminErr(uc.adminRepo.UpdateApplication(ctx, id, in), "Application not found.")
}

func (uc *adminUsecase) DeleteApplication(ctx context.Context, id int64) error {
	if err := requireModerator(ctx); err != nil {
		return err
	}
	return mapAdminErr(uc.adminRepo.DeleteApplication(ctx, id), "Application not found.")
}
