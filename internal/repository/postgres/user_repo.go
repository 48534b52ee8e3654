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

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, fullname, email, phone_number, password_hash, role,
	profile_bio, profile_skills, profile_photo_url, profile_resume_url, profile_resume_name,
	created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var skills []string
	err := row.Scan(
		&user.ID, &user.Fullname, &user.Email, &user.PhoneNumber, &user.PasswordHash, &user.Role,
		&user.Profile.Bio, pq.Array(&skills), &user.Profile.PhotoURL, &user.Profile.ResumeURL, &user.Profile.ResumeOriginalName,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	user.Profile.Skills = skills
	return &user, nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, fullname, email, phone_number, password_hash, role,
              profile_bio, profile_skills, profile_photo_url, profile_resume_url, profile_resume_name,
              created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Fullname, user.Email, user.PhoneNumber, user.PasswordHash, user.Role,
		user.Profile.Bio, pq.Array(user.Profile.Skills), user.Profile.PhotoURL, user.Profile.ResumeURL, user.Profile.ResumeOriginalName,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET
		fullname = $2,
		email = $3,
		phone_number = $4,
		profile_bio = $5,
		profile_skills = $6,
		profile_photo_url = $7,
		profile_resume_url = $8,
		profile_resume_name = $9,
		updated_at = $10
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		user.ID, user.Fullname, user.Email, user.PhoneNumber,
		user.Profile.Bio, pq.Array(user.Profile.Skills), user.Profile.PhotoURL,
		user.Profile.ResumeURL, user.Profile.ResumeOriginalName,
		user.UpdatedAt,
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
