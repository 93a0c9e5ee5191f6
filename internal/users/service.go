package users

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/drenteria/catalog-backend/pkg/config"
	"github.com/drenteria/catalog-backend/pkg/db"
	"github.com/drenteria/catalog-backend/pkg/db/models"
	pkgErrors "github.com/drenteria/catalog-backend/pkg/errors"
	"github.com/drenteria/catalog-backend/pkg/logger"
)

// repository is the persistence surface the service needs. Satisfied by
// *Repository and by stubs in tests.
type repository interface {
	Create(ctx context.Context, dto CreateUserDTO) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Save(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Actor identifies the authenticated caller of a service operation.
type Actor struct {
	ID      uuid.UUID
	IsAdmin bool
}

// RegisterRequest is the payload accepted by POST /auth/register.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	FirstName string `json:"first_name" validate:"required,max=128"`
	LastName  string `json:"last_name" validate:"required,max=128"`
	Email     string `json:"email" validate:"required,email"`
	BirthDate string `json:"birth_date" validate:"required"`
}

// UpdateUserRequest is a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	FirstName   *string            `json:"first_name" validate:"omitempty,max=128"`
	LastName    *string            `json:"last_name" validate:"omitempty,max=128"`
	Email       *string            `json:"email" validate:"omitempty,email"`
	BirthDate   *string            `json:"birth_date"`
	IsActive    *bool              `json:"is_active"`
	IsAdmin     *bool              `json:"is_admin"`
	Preferences *UpdatePreferences `json:"preferences"`
}

// UpdatePreferences adjusts the caller's catalog settings.
type UpdatePreferences struct {
	PageSize *int `json:"page_size" validate:"omitempty,gt=0"`
}

type Service struct {
	repo      repository
	passwords config.PasswordConfig
	logg      *logger.Logger
	hash      func(password string, cfg config.PasswordConfig) (string, error)
}

func NewService(repo repository, passwords config.PasswordConfig, logg *logger.Logger, hash func(string, config.PasswordConfig) (string, error)) *Service {
	return &Service{repo: repo, passwords: passwords, logg: logg, hash: hash}
}

// Register creates a new account. New accounts are always active and never
// admins; a taken username yields a conflict.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*UserDTO, error) {
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return nil, pkgErrors.New(pkgErrors.CodeConflict, "username already taken")
	} else if !stdErrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternal, err, "looking up username")
	}

	passwordHash, err := s.hash(req.Password, s.passwords)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternal, err, "hashing password")
	}

	user, err := s.repo.Create(ctx, CreateUserDTO{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		BirthDate:    birthDate,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "idx_users_username") {
			return nil, pkgErrors.New(pkgErrors.CodeConflict, "username already taken")
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternal, err, "creating user")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithUserID(ctx, user.ID.String()), "user registered")
	}
	return FromModel(user), nil
}

// Get loads a single user by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.New(pkgErrors.CodeNotFound, "user not found")
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternal, err, "loading user")
	}
	return FromModel(user), nil
}

// List returns every account, admin only at the route layer.
func (s *Service) List(ctx context.Context) ([]UserDTO, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternal, err, "listing users")
	}
	dtos := make([]UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, *FromModel(&users[i]))
	}
	return dtos, nil
}

// Update applies a partial update. Only admins may touch the admin and
// active flags.
func (s *Service) Update(ctx context.Context, actor Actor, id uuid.UUID, req UpdateUserRequest) (*UserDTO, error) {
	if (req.IsAdmin != nil || req.IsActive != nil) && !actor.IsAdmin {
		return nil, pkgErrors.New(pkgErrors.CodeForbidden, "role changes require admin access")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.New(pkgErrors.CodeNotFound, "user not found")
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternal, err, "loading user")
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.BirthDate != nil {
		birthDate, err := parseBirthDate(*req.BirthDate)
		if err != nil {
			return nil, err
		}
		user.BirthDate = birthDate
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.Preferences != nil && req.Preferences.PageSize != nil {
		if *req.Preferences.PageSize <= 0 {
			return nil, pkgErrors.New(pkgErrors.CodeValidation, "page_size must be positive")
		}
		user.PageSize = *req.Preferences.PageSize
	}

	updated, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternal, err, "saving user")
	}
	return FromModel(updated), nil
}

// Delete removes an account. An admin may not delete their own account so
// the system cannot be left without its last administrator by accident.
func (s *Service) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if actor.ID == id {
		return pkgErrors.New(pkgErrors.CodeForbidden, "cannot delete own account")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return pkgErrors.New(pkgErrors.CodeNotFound, "user not found")
		}
		return pkgErrors.Wrap(pkgErrors.CodeInternal, err, "deleting user")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithUserID(ctx, id.String()), "user deleted")
	}
	return nil
}

func parseBirthDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, pkgErrors.New(pkgErrors.CodeValidation, "birth_date must be YYYY-MM-DD").
		WithDetails(map[string]string{"birth_date": "expected YYYY-MM-DD"})
}
