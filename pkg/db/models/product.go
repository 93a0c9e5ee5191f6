package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog listing. ProductID is the externally supplied
// numeric identifier; ID is the internal key used in routes and image seeds.
// Availability is derived from Stock at read time, never from IsActive alone.
type Product struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ProductID   int64     `gorm:"column:product_id;not null;uniqueIndex"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description;not null"`
	Stock       int       `gorm:"column:stock;not null;default:0"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// Available reports whether the product is in stock.
func (p Product) Available() bool {
	return p.Stock > 0
}
