package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type adminRepo struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) domain.AdminRepository {
	return &adminRepo{db: db}
}

// Partial updates use COALESCE(NULLIF($n, ''), col) so that fields the
// panel left blank keep their stored value.

func (r *adminRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		var skills []string
		if err := rows.Scan(
			&user.ID, &user.Fullname, &user.Email, &user.PhoneNumber, &user.PasswordHash, &user.Role,
			&user.Profile.Bio, pq.Array(&skills), &user.Profile.PhotoURL, &user.Profile.ResumeURL, &user.Profile.ResumeOriginalName,
			&user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		user.Profile.Skills = skills
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *adminRepo) UpdateUser(ctx context.Context, id string, in *domain.AdminUserInput) error {
	query := `UPDATE users SET
		fullname = COALESCE(NULLIF($2, ''), fullname),
		email = COALESCE(NULLIF($3, ''), email),
		phone_number = COALESCE(NULLIF($4, ''), phone_number),
		role = COALESCE(NULLIF($5, ''), role),
		profile_bio = COALESCE($6, profile_bio),
		profile_skills = COALESCE($7, profile_skills),
		updated_at = NOW()
	WHERE id = $1`

	var skills interface{}
	if in.Skills != nil {
		skills = pq.Array([]string(in.Skills))
	}
	result, err := r.db.Exec(ctx, query, id, in.Fullname, in.Email, in.PhoneNumber, in.Role, in.Bio, skills)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicate
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *adminRepo) DeleteUser(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *adminRepo) ListJobs(ctx context.Context) ([]domain.Job, error) {
	query := `
		SELECT
			j.id, j.title, j.description, j.requirements, j.salary,
			j.location, j.job_type, j.experience_level, j.position,
			j.company_id, j.created_by, j.created_at, j.updated_at,
			c.id, c.name, c.logo_url, c.location
		FROM jobs j
		JOIN companies c ON j.company_id = c.id
		ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query)
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

func (r *adminRepo) UpdateJob(ctx context.Context, id int64, in *domain.AdminJobInput) error {
	query := `UPDATE jobs SET
		title = COALESCE(NULLIF($2, ''), title),
		description = COALESCE(NULLIF($3, ''), description),
		requirements = COALESCE($4, requirements),
		salary = COALESCE($5, salary),
		location = COALESCE(NULLIF($6, ''), location),
		job_type = COALESCE(NULLIF($7, ''), job_type),
		experience_level = COALESCE(NULLIF($8, ''), experience_level),
		position = COALESCE($9, position),
		updated_at = NOW()
	WHERE id = $1`

	var requirements interface{}
	if in.Requirements != nil {
		requirements = pq.Array([]string(in.Requirements))
	}
	var salary *float64
	if in.Salary != nil {
		v := float64(*in.Salary)
		salary = &v
	}
	var position *int
	if in.Position != nil {
		v := int(*in.Position)
		position = &v
	}
	result, err := r.db.Exec(ctx, query, id,
		in.Title, in.Description, requirements, salary,
		in.Location, in.JobType, in.ExperienceLevel, position,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *adminRepo) DeleteJob(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *adminRepo) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(
			&company.ID, &company.Name, &company.Description, &company.Website,
			&company.Location, &company.LogoURL, &company.UserID,
			&company.CreatedAt, &company.UpdatedAt,
		); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

func (r *adminRepo) UpdateCompany(ctx context.Context, id int64, in *domain.AdminCompanyInput) error {
	query := `UPDATE companies SET
		name = COALESCE(NULLIF($2, ''), name),
		description = COALESCE(NULLIF($3, ''), description),
		website = COALESCE(NULLIF($4, ''), website),
		location = COALESCE(NULLIF($5, ''), location),
		updated_at = NOW()
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, in.Name, in.Description, in.Website, in.Location)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicate
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *adminRepo) DeleteCompany(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *adminRepo) ListApplications(ctx context.Context) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
			j.id, j.title, j.location, j.company_id,
			u.id, u.fullname, u.email
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN users u ON a.applicant_id = u.id
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		var job domain.Job
		var user domain.User
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
			&job.ID, &job.Title, &job.Location, &job.CompanyID,
			&user.ID, &user.Fullname, &user.Email,
		); err != nil {
			return nil, err
		}
		app.Job = &job
		app.Applicant = &user
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *adminRepo) UpdateApplication(ctx context.Context, id int64, in *domain.AdminApplicationInput) error {
	query := `UPDATE applications SET
		status = COALESCE(NULLIF($2, ''), status),
		updated_at = NOW()
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, in.Status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *adminRepo) DeleteApplication(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
