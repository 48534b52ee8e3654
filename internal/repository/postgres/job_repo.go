package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, title, description, requirements, salary, location, job_type, experience_level, position, company_id, created_by, created_at, updated_at`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	var requirements []string
	err := row.Scan(
		&job.ID, &job.Title, &job.Description, pq.Array(&requirements), &job.Salary,
		&job.Location, &job.JobType, &job.ExperienceLevel, &job.Position,
		&job.CompanyID, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	job.Requirements = requirements
	return &job, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (title, description, requirements, salary, location, job_type, experience_level, position, company_id, created_by, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		job.Title, job.Description, pq.Array(job.Requirements), job.Salary,
		job.Location, job.JobType, job.ExperienceLevel, job.Position,
		job.CompanyID, job.CreatedBy, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return scanJob(r.db.QueryRow(ctx, query, id))
}

// GetDetail expands the job with its company summary.
func (r *jobRepo) GetDetail(ctx context.Context, id int64) (*domain.Job, error) {
	query := `
		SELECT
			j.id, j.title, j.description, j.requirements, j.salary,
			j.location, j.job_type, j.experience_level, j.position,
			j.company_id, j.created_by, j.created_at, j.updated_at,
			c.id, c.name, c.logo_url, c.location
		FROM jobs j
		JOIN companies c ON j.company_id = c.id
		WHERE j.id = $1`

	var job domain.Job
	var company domain.CompanySummary
	var requirements []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Description, pq.Array(&requirements), &job.Salary,
		&job.Location, &job.JobType, &job.ExperienceLevel, &job.Position,
		&job.CompanyID, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt,
		&company.ID, &company.Name, &company.LogoURL, &company.Location,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	job.Requirements = requirements
	job.Company = &company
	return &job, nil
}

// Search matches the keyword case-insensitively against title and
// description. An empty keyword returns all jobs.
func (r *jobRepo) Search(ctx context.Context, keyword string) ([]domain.Job, error) {
	query := `
		SELECT
			j.id, j.title, j.description, j.requirements, j.salary,
			j.location, j.job_type, j.experience_level, j.position,
			j.company_id, j.created_by, j.created_at, j.updated_at,
			c.id, c.name, c.logo_url, c.location
		FROM jobs j
		JOIN companies c ON j.company_id = c.id
		WHERE $1 = '' OR j.title ILIKE '%' || $1 || '%' OR j.description ILIKE '%' || $1 || '%'
		ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		var company domain.CompanySummary
		var requirements []string
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Description, pq.Array(&requirements), &job.Salary,
			&job.Location, &job.JobType, &job.ExperienceLevel, &job.Position,
			&job.CompanyID, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt,
			&company.ID, &company.Name, &company.LogoURL, &company.Location,
		); err != nil {
			return nil, err
		}
		job.Requirements = requirements
		job.Company = &company
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) FetchByCreator(ctx context.Context, userID string) ([]domain.Job, error) {
	query := `
		SELECT
			j.id, j.title, j.description, j.requirements, j.salary,
			j.location, j.job_type, j.experience_level, j.position,
			j.company_id, j.created_by, j.created_at, j.updated_at,
			c.id, c.name, c.logo_url, c.location
		FROM jobs j
		JOIN companies c ON j.company_id = c.id
		WHERE j.created_by = $1
		ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		var company domain.CompanySummary
		var requirements []string
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Description, pq.Array(&requirements), &job.Salary,
			&job.Location, &job.JobType, &job.ExperienceLevel, &job.Position,
			&job.CompanyID, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt,
			&company.ID, &company.Name, &company.LogoURL, &company.Location,
		); err != nil {
			return nil, err
		}
		job.Requirements = requirements
		job.Company = &company
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		description = $3,
		requirements = $4,
		salary = $5,
		location = $6,
		job_type = $7,
		experience_level = $8,
		position = $9,
		company_id = $10,
		updated_at = $11
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, pq.Array(job.Requirements), job.Salary,
		job.Location, job.JobType, job.ExperienceLevel, job.Position,
		job.CompanyID, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM jobs WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
