package domain

import (
	"context"
	"time"
)

type Company struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	Location    string    `json:"location,omitempty"`
	LogoURL     string    `json:"logo,omitempty"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CompanyName is the public name-only projection used for dropdowns.
type CompanyName struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UpdateCompanyInput is a partial update; empty fields stay unchanged.
type UpdateCompanyInput struct {
	Name        string
	Description string
	Website     string
	Location    string
	LogoURL     string
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	FetchByOwner(ctx context.Context, userID string) ([]Company, error)
	ExistsByOwnerAndName(ctx context.Context, userID, name string) (bool, error)
	FetchNames(ctx context.Context) ([]CompanyName, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id int64) error
}

type CompanyUsecase interface {
	Register(ctx context.Context, ownerID, name string) (*Company, error)
	ListMine(ctx context.Context, ownerID string) ([]Company, error)
	GetByID(ctx context.Context, id int64) (*Company, error)
	ListAllNames(ctx context.Context) ([]CompanyName, error)
	Update(ctx context.Context, callerID, role string, id int64, input UpdateCompanyInput) (*Company, error)
	Delete(ctx context.Context, callerID, role string, id int64) error
}
