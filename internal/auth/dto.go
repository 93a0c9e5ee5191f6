package auth

import "github.com/drenteria/catalog-backend/internal/users"

// LoginRequest is the payload accepted by POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the signed access token alongside the account it
// was minted for.
type LoginResponse struct {
	Token    string         `json:"token"`
	Username string         `json:"username"`
	User     *users.UserDTO `json:"user"`
}
