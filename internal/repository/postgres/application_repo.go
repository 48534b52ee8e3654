package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (job_id, applicant_id, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		app.JobID, app.ApplicantID, app.Status, app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT id, job_id, applicant_id, status, created_at, updated_at
              FROM applications WHERE id = $1`
	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByApplicant expands each application with its job and the job's
// company summary, newest first.
func (r *applicationRepo) GetByApplicant(ctx context.Context, userID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
			j.id, j.title, j.description, j.requirements, j.salary,
			j.location, j.job_type, j.experience_level, j.position,
			j.company_id, j.created_by, j.created_at, j.updated_at,
			c.id, c.name, c.logo_url, c.location
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN companies c ON j.company_id = c.id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		var job domain.Job
		var company domain.CompanySummary
		var requirements []string
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
			&job.ID, &job.Title, &job.Description, pq.Array(&requirements), &job.Salary,
			&job.Location, &job.JobType, &job.ExperienceLevel, &job.Position,
			&job.CompanyID, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt,
			&company.ID, &company.Name, &company.LogoURL, &company.Location,
		); err != nil {
			return nil, err
		}
		job.Requirements = requirements
		job.Company = &company
		app.Job = &job
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// GetByJobID expands each application with its applicant profile,
// newest first.
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
			u.id, u.fullname, u.email, u.phone_number, u.role,
			u.profile_bio, u.profile_skills, u.profile_photo_url, u.profile_resume_url, u.profile_resume_name,
			u.created_at, u.updated_at
		FROM applications a
		JOIN users u ON a.applicant_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		var user domain.User
		var skills []string
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
			&user.ID, &user.Fullname, &user.Email, &user.PhoneNumber, &user.Role,
			&user.Profile.Bio, pq.Array(&skills), &user.Profile.PhotoURL, &user.Profile.ResumeURL, &user.Profile.ResumeOriginalName,
			&user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		user.Profile.Skills = skills
		app.Applicant = &user
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) CheckExists(ctx context.Context, jobID int64, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, jobID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
