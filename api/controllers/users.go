package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/drenteria/catalog-backend/api/middleware"
	"github.com/drenteria/catalog-backend/api/responses"
	"github.com/drenteria/catalog-backend/api/validators"
	usersService "github.com/drenteria/catalog-backend/internal/users"
	pkgErrors "github.com/drenteria/catalog-backend/pkg/errors"
	"github.com/drenteria/catalog-backend/pkg/logger"
)

type UsersController struct {
	users *usersService.Service
	logg  *logger.Logger
}

func NewUsersController(users *usersService.Service, logg *logger.Logger) *UsersController {
	return &UsersController{users: users, logg: logg}
}

// actorFromRequest rebuilds the caller identity seeded by the auth middleware.
func actorFromRequest(r *http.Request) (usersService.Actor, error) {
	id, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
	if err != nil {
		return usersService.Actor{}, pkgErrors.New(pkgErrors.CodeUnauthorized, "invalid token subject")
	}
	return usersService.Actor{ID: id, IsAdmin: middleware.IsAdminFromContext(r.Context())}, nil
}

func pathID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, pkgErrors.New(pkgErrors.CodeValidation, "invalid id").
			WithDetails(map[string]string{param: "must be a valid UUID"})
	}
	return id, nil
}

// List handles GET /auth/users (admin only).
func (c *UsersController) List(w http.ResponseWriter, r *http.Request) {
	all, err := c.users.List(r.Context())
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, map[string]any{"users": all})
}

// Me handles GET /auth/users/me.
func (c *UsersController) Me(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	user, err := c.users.Get(r.Context(), actor.ID)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, user)
}

// Get handles GET /auth/users/{id} (self or admin).
func (c *UsersController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	user, err := c.users.Get(r.Context(), id)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, user)
}

// Update handles PUT /auth/users/{id} (self or admin).
func (c *UsersController) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	var req usersService.UpdateUserRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	user, err := c.users.Update(r.Context(), actor, id, req)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, user)
}

// Delete handles DELETE /auth/users/{id} (admin only, never self).
func (c *UsersController) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	if err := c.users.Delete(r.Context(), actor, id); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, map[string]string{"status": "deleted"})
}
