package products

import (
	"time"

	"github.com/google/uuid"
)

// ProductDTO is the decorated transport shape. Status is derived from stock
// at read time and Image is computed from the product's seed, neither is
// stored.
type ProductDTO struct {
	ID          uuid.UUID `json:"id"`
	ProductID   int64     `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Stock       int       `json:"stock"`
	Status      bool      `json:"status"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProductRequest is the payload accepted by POST /products.
type CreateProductRequest struct {
	ProductID   int64  `json:"product_id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,max=256"`
	Description string `json:"description" validate:"required,max=4096"`
	Stock       int    `json:"stock" validate:"gte=0"`
}

// UpdateProductRequest is a partial update; nil fields are left untouched.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=256"`
	Description *string `json:"description" validate:"omitempty,max=4096"`
	Stock       *int    `json:"stock" validate:"omitempty,gte=0"`
}

// ListResult is the paginated query output.
type ListResult struct {
	Products      []ProductDTO `json:"products"`
	Page          int          `json:"page"`
	TotalPages    int          `json:"total_pages"`
	TotalProducts int64        `json:"total_products"`
	PageSize      int          `json:"page_size"`
}
