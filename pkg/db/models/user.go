package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents the canonical identity entity. Username is the immutable
// login identifier; routes address users by UUID.
type User struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Username     string    `gorm:"column:username;not null;uniqueIndex"`
	FirstName    string    `gorm:"column:first_name;not null"`
	LastName     string    `gorm:"column:last_name;not null"`
	Email        string    `gorm:"column:email;not null"`
	BirthDate    time.Time `gorm:"column:birth_date;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	IsAdmin      bool      `gorm:"column:is_admin;not null;default:false"`
	PageSize     int       `gorm:"column:page_size;not null;default:12"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
