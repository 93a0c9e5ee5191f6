package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/drenteria/catalog-backend/pkg/db/models"
	"github.com/drenteria/catalog-backend/pkg/pagination"
)

// UserDTO is the transport shape that omits the password hash.
type UserDTO struct {
	ID          uuid.UUID      `json:"id"`
	Username    string         `json:"username"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Email       string         `json:"email"`
	BirthDate   time.Time      `json:"birth_date"`
	IsActive    bool           `json:"is_active"`
	IsAdmin     bool           `json:"is_admin"`
	Preferences PreferencesDTO `json:"preferences"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// PreferencesDTO carries the per-user catalog settings.
type PreferencesDTO struct {
	PageSize int `json:"page_size"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
// Registration never grants the admin flag.
type CreateUserDTO struct {
	Username     string
	FirstName    string
	LastName     string
	Email        string
	BirthDate    time.Time
	PasswordHash string
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		BirthDate: u.BirthDate,
		IsActive:  u.IsActive,
		IsAdmin:   u.IsAdmin,
		Preferences: PreferencesDTO{
			PageSize: pagination.NormalizePageSize(u.PageSize),
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		ID:           uuid.New(),
		Username:     c.Username,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		BirthDate:    c.BirthDate,
		PasswordHash: c.PasswordHash,
		IsActive:     true,
		IsAdmin:      false,
		PageSize:     pagination.DefaultPageSize,
	}
}
