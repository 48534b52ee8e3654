package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate resource")
)

// User roles
const (
	RoleJobseeker = "jobseeker"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

// Profile holds the job-seeker facing parts of a user record.
type Profile struct {
	PhotoURL           string   `json:"profilePhoto,omitempty"`
	Bio                string   `json:"bio,omitempty"`
	Skills             []string `json:"skills,omitempty"`
	ResumeURL          string   `json:"resume,omitempty"`
	ResumeOriginalName string   `json:"resumeOriginalName,omitempty"`
}

type User struct {
	ID           string    `json:"id"`
	Fullname     string    `json:"fullname"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateProfileInput is a partial profile update. Empty fields are left
// unchanged, matching form submissions that omit untouched inputs.
type UpdateProfileInput struct {
	Fullname           string
	Email              string
	PhoneNumber        string
	Bio                string
	Skills             []string
	ResumeURL          string
	ResumeOriginalName string
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	Register(ctx context.Context, user *User, password string) error
	Login(ctx context.Context, email, password, role string) (*User, error)
	// ModeratorLogin is the admin-panel variant: only recruiter/admin
	// accounts may sign in, role is taken from the stored record.
	ModeratorLogin(ctx context.Context, email, password string) (*User, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*User, error)
}
