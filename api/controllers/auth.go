package controllers

import (
	"net/http"

	"github.com/drenteria/catalog-backend/api/responses"
	"github.com/drenteria/catalog-backend/api/validators"
	authService "github.com/drenteria/catalog-backend/internal/auth"
	usersService "github.com/drenteria/catalog-backend/internal/users"
	"github.com/drenteria/catalog-backend/pkg/logger"
)

type AuthController struct {
	auth  *authService.Service
	users *usersService.Service
	logg  *logger.Logger
}

func NewAuthController(auth *authService.Service, users *usersService.Service, logg *logger.Logger) *AuthController {
	return &AuthController{auth: auth, users: users, logg: logg}
}

// Register handles POST /auth/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req usersService.RegisterRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	user, err := c.users.Register(r.Context(), req)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccessStatus(w, http.StatusCreated, user)
}

// Login handles POST /auth/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req authService.LoginRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	resp, err := c.auth.Login(r.Context(), req)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, resp)
}
