package products

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/drenteria/catalog-backend/pkg/config"
	"github.com/drenteria/catalog-backend/pkg/db"
	"github.com/drenteria/catalog-backend/pkg/db/models"
	pkgErrors "github.com/drenteria/catalog-backend/pkg/errors"
	"github.com/drenteria/catalog-backend/pkg/images"
	"github.com/drenteria/catalog-backend/pkg/logger"
	"github.com/drenteria/catalog-backend/pkg/pagination"
)

type repository interface {
	Count(ctx context.Context, filter Filter) (int64, error)
	List(ctx context.Context, filter Filter, offset, limit int) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Save(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// pageSizeResolver looks up the requester so their stored page-size
// preference drives pagination. Satisfied by the users repository.
type pageSizeResolver interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type Service struct {
	repo    repository
	users   pageSizeResolver
	catalog config.CatalogConfig
	logg    *logger.Logger
	nouns   images.NounSource
}

func NewService(repo repository, users pageSizeResolver, catalog config.CatalogConfig, logg *logger.Logger, nouns images.NounSource) *Service {
	return &Service{repo: repo, users: users, catalog: catalog, logg: logg, nouns: nouns}
}

// List runs the catalog query for one requester. The count and the page
// fetch are two independent store calls; under concurrent writes the totals
// can drift from the returned slice on the last page, which is accepted.
func (s *Service) List(ctx context.Context, requesterID uuid.UUID, page int, query string) (*ListResult, error) {
	requester, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.New(pkgErrors.CodeNotFound, "user not found")
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternal, err, "resolving requester")
	}

	page = pagination.NormalizePage(page)
	size := pagination.NormalizePageSize(requester.PageSize)
	filter := Filter{Search: query}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternal, err, "counting products")
	}

	items, err := s.repo.List(ctx, filter, pagination.Offset(page, size), size)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternal, err, "listing products")
	}

	fallback := s.responseNounSource()
	dtos := make([]ProductDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, s.decorate(&items[i], fallback))
	}

	return &ListResult{
		Products:      dtos,
		Page:          page,
		TotalPages:    pagination.TotalPages(total, size),
		TotalProducts: total,
		PageSize:      size,
	}, nil
}

// Get loads and decorates a single product.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.New(pkgErrors.CodeNotFound, "product not found")
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternal, err, "loading product")
	}
	dto := s.decorate(product, s.responseNounSource())
	return &dto, nil
}

// Create inserts a product. The external product_id must be unique.
func (s *Service) Create(ctx context.Context, req CreateProductRequest) (*ProductDTO, error) {
	product, err := s.repo.Create(ctx, &models.Product{
		ProductID:   req.ProductID,
		Name:        req.Name,
		Description: req.Description,
		Stock:       req.Stock,
		IsActive:    req.Stock > 0,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "idx_products_product_id") {
			return nil, pkgErrors.New(pkgErrors.CodeConflict, "product_id already exists")
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternal, err, "creating product")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "product_id", product.ProductID), "product created")
	}
	dto := s.decorate(product, s.responseNounSource())
	return &dto, nil
}

// Update applies a partial update to name, description, and stock.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.New(pkgErrors.CodeNotFound, "product not found")
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternal, err, "loading product")
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, pkgErrors.New(pkgErrors.CodeValidation, "stock cannot be negative")
		}
		product.Stock = *req.Stock
		product.IsActive = *req.Stock > 0
	}

	updated, err := s.repo.Save(ctx, product)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternal, err, "saving product")
	}
	dto := s.decorate(updated, s.responseNounSource())
	return &dto, nil
}

// Delete removes a product.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return pkgErrors.New(pkgErrors.CodeNotFound, "product not found")
		}
		return pkgErrors.Wrap(pkgErrors.CodeInternal, err, "deleting product")
	}
	return nil
}

// responseNounSource resolves the fallback noun at most once so every item
// in a single response shares the same substitute category.
func (s *Service) responseNounSource() images.NounSource {
	src := s.nouns
	if src == nil {
		src = images.RandomNoun
	}
	var noun string
	return func() string {
		if noun == "" {
			noun = src()
		}
		return noun
	}
}

func (s *Service) decorate(p *models.Product, fallback images.NounSource) ProductDTO {
	category := images.Category(p.Name, fallback)
	seed := images.Seed(p.ID.String(), category)
	return ProductDTO{
		ID:          p.ID,
		ProductID:   p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Stock:       p.Stock,
		Status:      p.Available(),
		Category:    category,
		Image:       images.URL(s.catalog.ImageBaseURL, category, seed),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
