package controllers

import (
	"net/http"

	"github.com/drenteria/catalog-backend/api/responses"
	"github.com/drenteria/catalog-backend/api/validators"
	productsService "github.com/drenteria/catalog-backend/internal/products"
	"github.com/drenteria/catalog-backend/pkg/logger"
)

type ProductsController struct {
	products *productsService.Service
	logg     *logger.Logger
}

func NewProductsController(products *productsService.Service, logg *logger.Logger) *ProductsController {
	return &ProductsController{products: products, logg: logg}
}

// List handles GET /products?page=&query=. Pagination uses the requester's
// stored page-size preference.
func (c *ProductsController) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	result, err := c.products.List(r.Context(), actor.ID, validators.QueryPage(r), validators.QuerySearch(r))
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, result)
}

// Get handles GET /products/{id}.
func (c *ProductsController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	product, err := c.products.Get(r.Context(), id)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, product)
}

// Create handles POST /products (admin only).
func (c *ProductsController) Create(w http.ResponseWriter, r *http.Request) {
	var req productsService.CreateProductRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	product, err := c.products.Create(r.Context(), req)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccessStatus(w, http.StatusCreated, product)
}

// Update handles PUT /products/{id} (admin only).
func (c *ProductsController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	var req productsService.UpdateProductRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	product, err := c.products.Update(r.Context(), id, req)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, product)
}

// Delete handles DELETE /products/{id} (admin only).
func (c *ProductsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	if err := c.products.Delete(r.Context(), id); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, map[string]string{"status": "deleted"})
}
