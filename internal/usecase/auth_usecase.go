package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

func (uc *authUsecase) Register(ctx context.Context, user *domain.User, password string) error {
	// Normalize before the duplicate check so Foo@x.com collides with
	// a stored foo@x.com.
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	existing, err := uc.userRepo.GetByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}
	if existing != nil {
		return apperror.BadRequest("User already exists with this email.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}

	now := time.Now()
	user.ID = uuid.NewString()
	user.PasswordHash = string(hash)
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Lost the race against a concurrent signup with the same email.
		if errors.Is(err, domain.ErrDuplicate) {
			return apperror.BadRequest("User already exists with this email.")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (uc *authUsecase) Login(ctx context.Context, email, password, role string) (*domain.User, error) {
	user, err := uc.authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, apperror.BadRequest("Account doesn't exist with current role.")
	}
	return user, nil
}

// ModeratorLogin signs in recruiter and admin accounts for the admin
// panel; the role comes from the stored record, not the request.
func (uc *authUsecase) ModeratorLogin(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := uc.authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleRecruiter && user.Role != domain.RoleAdmin {
		return nil, apperror.Forbidden("Access denied. Recruiter or admin account required.")
	}
	return user, nil
}

// authenticate resolves email+password to a user. Unknown email and
// wrong password return the same message so the response does not leak
// which one failed.
func (uc *authUsecase) authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("Incorrect email or password.")
		}
		return nil, apperror.Internal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.BadRequest("Incorrect email or password.")
	}
	return user, nil
}

func (uc *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found.")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// UpdateProfile applies a partial update: empty input fields keep the
// stored value, matching form submissions that omit untouched inputs.
func (uc *authUsecase) UpdateProfile(ctx context.Context, userID string, input domain.UpdateProfileInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found.")
		}
		return nil, apperror.Internal(err)
	}

	if input.Fullname != "" {
		user.Fullname = input.Fullname
	}
	if input.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(input.Email))
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Bio != "" {
		user.Profile.Bio = input.Bio
	}
	if input.Skills != nil {
		user.Profile.Skills = input.Skills
	}
	if input.ResumeURL != "" {
		user.Profile.ResumeURL = input.ResumeURL
		user.Profile.ResumeOriginalName = input.ResumeOriginalName
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.BadRequest("User already exists with this email.")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
