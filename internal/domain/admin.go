package domain

import "context"

// AdminUserInput is the mutable subset of a user record exposed to the
// admin panel. Password hashes are never read or written through it.
type AdminUserInput struct {
	Fullname    string     `json:"fullname"`
	Email       string     `json:"email" binding:"omitempty,email"`
	PhoneNumber string     `json:"phoneNumber"`
	Role        string     `json:"role" binding:"omitempty,oneof=jobseeker recruiter admin"`
	Bio         *string    `json:"bio"`
	Skills      StringList `json:"skills"`
}

type AdminJobInput struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Requirements    StringList `json:"requirements"`
	Salary          *Number    `json:"salary"`
	Location        string     `json:"location"`
	JobType         string     `json:"jobType"`
	ExperienceLevel string     `json:"experienceLevel"`
	Position        *Count     `json:"position"`
}

type AdminCompanyInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
}

type AdminApplicationInput struct {
	Status string `json:"status" binding:"omitempty,oneof=Pending Accepted Rejected"`
}

// AdminRepository serves the moderation panel with full-collection
// reads and direct writes across every entity.
type AdminRepository interface {
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, id string, in *AdminUserInput) error
	DeleteUser(ctx context.Context, id string) error

	ListJobs(ctx context.Context) ([]Job, error)
	UpdateJob(ctx context.Context, id int64, in *AdminJobInput) error
	DeleteJob(ctx context.Context, id int64) error

	ListCompanies(ctx context.Context) ([]Company, error)
	UpdateCompany(ctx context.Context, id int64, in *AdminCompanyInput) error
	DeleteCompany(ctx context.Context, id int64) error

	ListApplications(ctx context.Context) ([]Application, error)
	UpdateApplication(ctx context.Context, id int64, in *AdminApplicationInput) error
	DeleteApplication(ctx context.Context, id int64) error
}

// AdminUsecase gates every operation on the caller role stored in the
// request context: recruiters and admins may pass, jobseekers may not.
type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, id string, in *AdminUserInput) error
	DeleteUser(ctx context.Context, id string) error

	ListJobs(ctx context.Context) ([]Job, error)
	UpdateJob(ctx context.Context, id int64, in *AdminJobInput) error
	DeleteJob(ctx context.Context, id int64) error

	ListCompanies(ctx context.Context) ([]Company, error)
	UpdateCompany(ctx context.Context, id int64, in *AdminCompanyInput) error
	DeleteCompany(ctx context.Context, id int64) error

	ListApplications(ctx context.Context) ([]Application, error)
	UpdateApplication(ctx context.Context, id int64, in *AdminApplicationInput) error
	DeleteApplication(ctx context.Context, id int64) error
}
