package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

const companyColumns = `id, name, description, website, location, logo_url, user_id, created_at, updated_at`

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var company domain.Company
	err := row.Scan(
		&company.ID, &company.Name, &company.Description, &company.Website,
		&company.Location, &company.LogoURL, &company.UserID,
		&company.CreatedAt, &company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (name, description, website, location, logo_url, user_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		company.Name, company.Description, company.Website, company.Location,
		company.LogoURL, company.UserID, company.CreatedAt, company.UpdatedAt,
	).Scan(&company.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return scanCompany(r.db.QueryRow(ctx, query, id))
}

func (r *companyRepo) FetchByOwner(ctx context.Context, userID string) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
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

func (r *companyRepo) ExistsByOwnerAndName(ctx context.Context, userID, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM companies WHERE user_id = $1 AND LOWER(name) = LOWER($2))`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *companyRepo) FetchNames(ctx context.Context) ([]domain.CompanyName, error) {
	query := `SELECT id, name FROM companies ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []domain.CompanyName
	for rows.Next() {
		var n domain.CompanyName
		if err := rows.Scan(&n.ID, &n.Name); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `UPDATE companies SET
		name = $2,
		description = $3,
		website = $4,
		location = $5,
		logo_url = $6,
		updated_at = $7
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Description, company.Website,
		company.Location, company.LogoURL, company.UpdatedAt,
	)
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

func (r *companyRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM companies WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
