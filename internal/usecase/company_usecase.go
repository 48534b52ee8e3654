package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo}
}

func (uc *companyUsecase) Register(ctx context.Context, ownerID, name string) (*domain.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.BadRequest("Company name is required.")
	}

	// Name uniqueness is scoped per owner; two recruiters may both
	// register an "Acme".
	exists, err := uc.companyRepo.ExistsByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.BadRequest("You already have a company with this name.")
	}

	now := time.Now()
	company := &domain.Company{
		Name:      name,
		UserID:    ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.BadRequest("You already have a company with this name.")
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

func (uc *companyUsecase) ListMine(ctx context.Context, ownerID string) ([]domain.Company, error) {
	companies, err := uc.companyRepo.FetchByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if companies == nil {
		companies = []domain.Company{}
	}
	return companies, nil
}

func (uc *companyUsecase) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found.")
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

func (uc *companyUsecase) ListAllNames(ctx context.Context) ([]domain.CompanyName, error) {
	names, err := uc.companyRepo.FetchNames(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if names == nil {
		names = []domain.CompanyName{}
	}
	return names, nil
}

func (uc *companyUsecase) Update(ctx context.Context, callerID, role string, id int64, input domain.UpdateCompanyInput) (*domain.Company, error) {
	company, err := uc.ownedCompany(ctx, callerID, role, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		input.Name = strings.TrimSpace(input.Name)
		if !strings.EqualFold(input.Name, company.Name) {
			exists, err := uc.companyRepo.ExistsByOwnerAndName(ctx, company.UserID, input.Name)
			if err != nil {
				return nil, apperror.Internal(err)
			}
			if exists {
				return nil, apperror.BadRequest("You already have a company with this name.")
			}
		}
		company.Name = input.Name
	}
	if input.Description != "" {
		company.Description = input.Description
	}
	if input.Website != "" {
		company.Website = input.Website
	}
	if input.Location != "" {
		company.Location = input.Location
	}
	if input.LogoURL != "" {
		company.LogoURL = input.LogoURL
	}
	company.UpdatedAt = time.Now()

	if err := uc.companyRepo.Update(ctx, company); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.BadRequest("You already have a company with this name.")
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

func (uc *companyUsecase) Delete(ctx context.Context, callerID, role string, id int64) error {
	if _, err := uc.ownedCompany(ctx, callerID, role, id); err != nil {
		return err
	}
	if err := uc.companyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found.")
		}
		return apperror.Internal(err)
	}
	return nil
}

// ownedCompany loads the company and checks the caller may modify it:
// the owning recruiter or an admin. The not-found message is reused for
// foreign companies so ids cannot be probed.
func (uc *companyUsecase) ownedCompany(ctx context.Context, callerID, role string, id int64) (*domain.Company, error) {
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found or not authorized.")
		}
		return nil, apperror.Internal(err)
	}
	if company.UserID != callerID && role != domain.RoleAdmin {
		return nil, apperror.NotFound("Company not found or not authorized.")
	}
	return company, nil
}
