package products

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/drenteria/catalog-backend/pkg/db/models"
)

// Filter narrows catalog queries. Search matches name or description as a
// case-insensitive substring.
type Filter struct {
	Search string
}

// Repository exposes product persistence operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// scoped applies the filter. LOWER + LIKE rather than ILIKE so the same
// query plans on postgres and the sqlite test driver.
func (r *Repository) scoped(ctx context.Context, filter Filter) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&models.Product{})
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	return tx
}

// Count returns the number of products matching the filter.
func (r *Repository) Count(ctx context.Context, filter Filter) (int64, error) {
	var total int64
	if err := r.scoped(ctx, filter).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// List returns one page of matching products in stable creation order.
func (r *Repository) List(ctx context.Context, filter Filter, offset, limit int) ([]models.Product, error) {
	var items []models.Product
	err := r.scoped(ctx, filter).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a product with a fresh internal id.
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// FindByID loads a product by its internal id.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Save persists the full product row.
func (r *Repository) Save(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product; gorm.ErrRecordNotFound when nothing matched.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
