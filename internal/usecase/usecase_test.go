package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}
func (m *MockCompanyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) FetchByOwner(ctx context.Context, userID string) ([]domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) ExistsByOwnerAndName(ctx context.Context, userID, name string) (bool, error) {
	args := m.Called(ctx, userID, name)
	return args.Bool(0), args.Error(1)
}
func (m *MockCompanyRepo) FetchNames(ctx context.Context) ([]domain.CompanyName, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyName), args.Error(1)
}
func (m *MockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}
func (m *MockCompanyRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetDetail(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Search(ctx context.Context, keyword string) ([]domain.Job, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) FetchByCreator(ctx context.Context, userID string) ([]domain.Job, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByApplicant(ctx context.Context, userID string) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) CheckExists(ctx context.Context, jobID int64, userID string) (bool, error) {
	args := m.Called(ctx, jobID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockAdminRepo) UpdateUser(ctx context.Context, id string, in *domain.AdminUserInput) error {
	return m.Called(ctx, id, in).Error(0)
}
func (m *MockAdminRepo) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockAdminRepo) ListJobs(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockAdminRepo) UpdateJob(ctx context.Context, id int64, in *domain.AdminJobInput) error {
	return m.Called(ctx, id, in).Error(0)
}
func (m *MockAdminRepo) DeleteJob(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockAdminRepo) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockAdminRepo) UpdateCompany(ctx context.Context, id int64, in *domain.AdminCompanyInput) error {
	return m.Called(ctx, id, in).Error(0)
}
func (m *MockAdminRepo) DeleteCompany(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockAdminRepo) ListApplications(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockAdminRepo) UpdateApplication(ctx context.Context, id int64, in *domain.AdminApplicationInput) error {
	return m.Called(ctx, id, in).Error(0)
}
func (m *MockAdminRepo) DeleteApplication(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestRegister(t *testing.T) {
	t.Run("Should reject an email that already has an account", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)

		mockRepo.On("GetByEmail", mock.Anything, "taken@example.com").
			Return(&domain.User{ID: "u1", Email: "taken@example.com"}, nil)

		err := uc.Register(context.Background(), &domain.User{Email: "taken@example.com"}, "password")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists with this email")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should map a lost insert race to the same duplicate message", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)

		mockRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

		err := uc.Register(context.Background(), &domain.User{Email: "raced@example.com"}, "password")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists with this email")
	})

	t.Run("Duplicate check is case-insensitive on email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)

		mockRepo.On("GetByEmail", mock.Anything, "taken@example.com").
			Return(&domain.User{ID: "u1", Email: "taken@example.com"}, nil)

		err := uc.Register(context.Background(), &domain.User{Email: " Taken@Example.COM "}, "password")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists with this email")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should hash the password and assign an id", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)

		mockRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID != "" && u.PasswordHash != "" && u.PasswordHash != "password"
		})).Return(nil)

		user := &domain.User{Email: "New@Example.com", Role: domain.RoleJobseeker}
		err := uc.Register(context.Background(), user, "password")
		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		mockRepo.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	stored := &domain.User{
		ID:           "u1",
		Email:        "user@example.com",
		Role:         domain.RoleJobseeker,
		PasswordHash: "",
	}

	t.Run("Unknown email and wrong password produce the same message", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)

		stored.PasswordHash = hashOf(t, "correct")
		mockRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(stored, nil)

		_, errUnknown := uc.Login(context.Background(), "nobody@example.com", "whatever", domain.RoleJobseeker)
		_, errWrongPass := uc.Login(context.Background(), "user@example.com", "wrong", domain.RoleJobseeker)

		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})

	t.Run("Should reject a role mismatch after valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)

		stored.PasswordHash = hashOf(t, "correct")
		mockRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(stored, nil)

		_, err := uc.Login(context.Background(), "user@example.com", "correct", domain.RoleRecruiter)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "doesn't exist with current role")
	})

	t.Run("Should succeed with valid credentials and matching role", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)

		stored.PasswordHash = hashOf(t, "correct")
		mockRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(stored, nil)

		user, err := uc.Login(context.Background(), "user@example.com", "correct", domain.RoleJobseeker)
		assert.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})
}

func TestModeratorLogin(t *testing.T) {
	t.Run("Should reject jobseeker accounts", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)

		stored := &domain.User{
			ID:           "u1",
			Email:        "seeker@example.com",
			Role:         domain.RoleJobseeker,
			PasswordHash: hashOf(t, "correct"),
		}
		mockRepo.On("GetByEmail", mock.Anything, "seeker@example.com").Return(stored, nil)

		_, err := uc.ModeratorLogin(context.Background(), "seeker@example.com", "correct")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Recruiter or admin account required")
	})

	t.Run("Should accept recruiter accounts", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)

		stored := &domain.User{
			ID:           "r1",
			Email:        "recruiter@example.com",
			Role:         domain.RoleRecruiter,
			PasswordHash: hashOf(t, "correct"),
		}
		mockRepo.On("GetByEmail", mock.Anything, "recruiter@example.com").Return(stored, nil)

		user, err := uc.ModeratorLogin(context.Background(), "recruiter@example.com", "correct")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleRecruiter, user.Role)
	})
}

func TestApply(t *testing.T) {
	job := &domain.Job{ID: 7, CreatedBy: "recruiter1"}

	t.Run("Should reject a second application for the same job", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(7)).Return(job, nil)
		appRepo.On("CheckExists", mock.Anything, int64(7), "seeker1").Return(true, nil)

		_, err := uc.Apply(context.Background(), 7, "seeker1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied for this job")
		appRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should treat a duplicate-key insert as already applied", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(7)).Return(job, nil)
		appRepo.On("CheckExists", mock.Anything, int64(7), "seeker1").Return(false, nil)
		appRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

		_, err := uc.Apply(context.Background(), 7, "seeker1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied for this job")
	})

	t.Run("Should reject applying to a missing job", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

		_, err := uc.Apply(context.Background(), 404, "seeker1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})

	t.Run("Should create a Pending application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(7)).Return(job, nil)
		appRepo.On("CheckExists", mock.Anything, int64(7), "seeker1").Return(false, nil)
		appRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Application) bool {
			return a.Status == domain.ApplicationStatusPending && a.JobID == 7 && a.ApplicantID == "seeker1"
		})).Return(nil)

		app, err := uc.Apply(context.Background(), 7, "seeker1")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	app := &domain.Application{ID: 3, JobID: 7}
	job := &domain.Job{ID: 7, CreatedBy: "recruiter1"}

	t.Run("Should reject an unknown status value", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		err := uc.UpdateStatus(context.Background(), 3, "Shortlisted", "recruiter1", domain.RoleRecruiter)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid status")
	})

	t.Run("Should reject a recruiter who does not own the job", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		appRepo.On("GetByID", mock.Anything, int64(3)).Return(app, nil)
		jobRepo.On("GetByID", mock.Anything, int64(7)).Return(job, nil)

		err := uc.UpdateStatus(context.Background(), 3, domain.ApplicationStatusAccepted, "other", domain.RoleRecruiter)
		assert.Error(t, err)
		appRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Should allow an admin on any job", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		appRepo.On("GetByID", mock.Anything, int64(3)).Return(app, nil)
		jobRepo.On("GetByID", mock.Anything, int64(7)).Return(job, nil)
		appRepo.On("UpdateStatus", mock.Anything, int64(3), domain.ApplicationStatusRejected).Return(nil)

		err := uc.UpdateStatus(context.Background(), 3, domain.ApplicationStatusRejected, "someadmin", domain.RoleAdmin)
		assert.NoError(t, err)
		appRepo.AssertExpectations(t)
	})
}

func TestListApplicants(t *testing.T) {
	job := &domain.Job{ID: 7, CreatedBy: "recruiter1"}

	t.Run("Should hide applicants from non-owners", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(7)).Return(job, nil)

		_, err := uc.ListApplicants(context.Background(), 7, "other", domain.RoleRecruiter)
		assert.Error(t, err)
		appRepo.AssertNotCalled(t, "GetByJobID")
	})

	t.Run("Should attach applications for the owner", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(7)).Return(job, nil)
		appRepo.On("GetByJobID", mock.Anything, int64(7)).
			Return([]domain.Application{{ID: 1, JobID: 7}}, nil)

		got, err := uc.ListApplicants(context.Background(), 7, "recruiter1", domain.RoleRecruiter)
		assert.NoError(t, err)
		assert.Len(t, got.Applications, 1)
	})
}

func TestJobDetails(t *testing.T) {
	t.Run("Expands applications with applicant identity", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewJobUsecase(jobRepo, new(MockCompanyRepo), appRepo)

		jobRepo.On("GetDetail", mock.Anything, int64(7)).Return(&domain.Job{
			ID:      7,
			Title:   "Backend Engineer",
			Company: &domain.CompanySummary{ID: 2, Name: "Acme"},
		}, nil)
		appRepo.On("GetByJobID", mock.Anything, int64(7)).Return([]domain.Application{
			{
				ID:          1,
				JobID:       7,
				ApplicantID: "seeker1",
				Applicant:   &domain.User{ID: "seeker1", Fullname: "Jane Seeker", Email: "jane@example.com"},
			},
		}, nil)

		job, err := uc.GetDetails(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, "Acme", job.Company.Name)
		assert.Len(t, job.Applications, 1)
		assert.NotNil(t, job.Applications[0].Applicant)
		assert.Equal(t, "Jane Seeker", job.Applications[0].Applicant.Fullname)
		assert.Equal(t, "jane@example.com", job.Applications[0].Applicant.Email)
	})

	t.Run("A job with no applications gets an empty slice", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewJobUsecase(jobRepo, new(MockCompanyRepo), appRepo)

		jobRepo.On("GetDetail", mock.Anything, int64(7)).Return(&domain.Job{ID: 7}, nil)
		appRepo.On("GetByJobID", mock.Anything, int64(7)).Return(nil, nil)

		job, err := uc.GetDetails(context.Background(), 7)
		assert.NoError(t, err)
		assert.NotNil(t, job.Applications)
		assert.Empty(t, job.Applications)
	})
}

func TestCompanyRegister(t *testing.T) {
	t.Run("Should reject a second company with the same name for one owner", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo)

		mockRepo.On("ExistsByOwnerAndName", mock.Anything, "owner1", "Acme").Return(true, nil)

		_, err := uc.Register(context.Background(), "owner1", "Acme")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already have a company with this name")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should allow different owners to reuse a name", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo)

		mockRepo.On("ExistsByOwnerAndName", mock.Anything, "owner2", "Acme").Return(false, nil)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		company, err := uc.Register(context.Background(), "owner2", "Acme")
		assert.NoError(t, err)
		assert.Equal(t, "owner2", company.UserID)
	})

	t.Run("Should reject a blank name", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo)

		_, err := uc.Register(context.Background(), "owner1", "   ")
		assert.Error(t, err)
	})
}

func TestJobOwnership(t *testing.T) {
	job := &domain.Job{ID: 5, CreatedBy: "recruiter1", Title: "Old Title"}

	t.Run("Should forbid updates from a recruiter who is not the creator", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo, new(MockApplicationRepo))

		jobRepo.On("GetByID", mock.Anything, int64(5)).Return(job, nil)

		_, err := uc.UpdateJob(context.Background(), "other", domain.RoleRecruiter, 5, domain.UpdateJobInput{Title: "New"})
		assert.Error(t, err)
		jobRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should let an admin update any job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo, new(MockApplicationRepo))

		jobRepo.On("GetByID", mock.Anything, int64(5)).Return(job, nil)
		jobRepo.On("Update", mock.Anything, mock.MatchedBy(func(j *domain.Job) bool {
			return j.Title == "New"
		})).Return(nil)

		updated, err := uc.UpdateJob(context.Background(), "someadmin", domain.RoleAdmin, 5, domain.UpdateJobInput{Title: "New"})
		assert.NoError(t, err)
		assert.Equal(t, "New", updated.Title)
	})

	t.Run("Should refuse posting under someone else's company", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo, new(MockApplicationRepo))

		companyRepo.On("GetByID", mock.Anything, int64(9)).
			Return(&domain.Company{ID: 9, UserID: "someone-else"}, nil)

		err := uc.PostJob(context.Background(), "recruiter1", &domain.Job{CompanyID: 9, Position: 1})
		assert.Error(t, err)
		jobRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject out-of-range numeric fields", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo, new(MockApplicationRepo))

		err := uc.PostJob(context.Background(), "recruiter1", &domain.Job{CompanyID: 9, Salary: -50000, Position: 1})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Salary must be non-negative")

		err = uc.PostJob(context.Background(), "recruiter1", &domain.Job{CompanyID: 9, Position: -3})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Position must be at least 1")

		salary := -1.0
		_, err = uc.UpdateJob(context.Background(), "recruiter1", domain.RoleRecruiter, 5, domain.UpdateJobInput{Salary: &salary})
		assert.Error(t, err)

		position := 0
		_, err = uc.UpdateJob(context.Background(), "recruiter1", domain.RoleRecruiter, 5, domain.UpdateJobInput{Position: &position})
		assert.Error(t, err)
		jobRepo.AssertNotCalled(t, "Update")
	})
}

func TestAdminPanelGate(t *testing.T) {
	t.Run("Should reject jobseekers", func(t *testing.T) {
		mockRepo := new(MockAdminRepo)
		uc := usecase.NewAdminUsecase(mockRepo)

		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleJobseeker)
		_, err := uc.ListUsers(ctx)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "ListUsers")
	})

	t.Run("Should fail safe when the role key is missing", func(t *testing.T) {
		mockRepo := new(MockAdminRepo)
		uc := usecase.NewAdminUsecase(mockRepo)

		_, err := uc.ListUsers(context.Background())
		assert.Error(t, err)
	})

	t.Run("Should admit recruiters", func(t *testing.T) {
		mockRepo := new(MockAdminRepo)
		uc := usecase.NewAdminUsecase(mockRepo)

		mockRepo.On("ListUsers", mock.Anything).Return([]domain.User{{ID: "u1"}}, nil)

		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleRecruiter)
		users, err := uc.ListUsers(ctx)
		assert.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("Lowercases admin-set emails before storing", func(t *testing.T) {
		mockRepo := new(MockAdminRepo)
		uc := usecase.NewAdminUsecase(mockRepo)

		mockRepo.On("UpdateUser", mock.Anything, "u1", mock.MatchedBy(func(in *domain.AdminUserInput) bool {
			return in.Email == "mixed@example.com"
		})).Return(nil)

		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleAdmin)
		err := uc.UpdateUser(ctx, "u1", &domain.AdminUserInput{Email: " Mixed@Example.COM "})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Rejects out-of-range admin job updates", func(t *testing.T) {
		mockRepo := new(MockAdminRepo)
		uc := usecase.NewAdminUsecase(mockRepo)

		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleAdmin)

		salary := domain.Number(-1)
		err := uc.UpdateJob(ctx, 1, &domain.AdminJobInput{Salary: &salary})
		assert.Error(t, err)

		position := domain.Count(0)
		err = uc.UpdateJob(ctx, 1, &domain.AdminJobInput{Position: &position})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "UpdateJob")
	})

	t.Run("Should validate admin status updates", func(t *testing.T) {
		mockRepo := new(MockAdminRepo)
		uc := usecase.NewAdminUsecase(mockRepo)

		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleAdmin)
		err := uc.UpdateApplication(ctx, 1, &domain.AdminApplicationInput{Status: "Archived"})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "UpdateApplication")
	})
}

func TestEmptyListsAreNotErrors(t *testing.T) {
	t.Run("Job search with no matches returns an empty slice", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo, new(MockApplicationRepo))

		jobRepo.On("Search", mock.Anything, "nothing").Return(nil, nil)

		jobs, err := uc.Search(context.Background(), "nothing")
		assert.NoError(t, err)
		assert.NotNil(t, jobs)
		assert.Empty(t, jobs)
	})

	t.Run("A user with no applications gets an empty slice", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		appRepo.On("GetByApplicant", mock.Anything, "seeker1").Return(nil, nil)

		apps, err := uc.ListAppliedJobs(context.Background(), "seeker1")
		assert.NoError(t, err)
		assert.NotNil(t, apps)
		assert.Empty(t, apps)
	})
}
