package auth

import (
	"context"
	stdErrors "errors"
	"time"

	"gorm.io/gorm"

	"github.com/drenteria/catalog-backend/internal/users"
	pkgAuth "github.com/drenteria/catalog-backend/pkg/auth"
	"github.com/drenteria/catalog-backend/pkg/config"
	"github.com/drenteria/catalog-backend/pkg/db/models"
	pkgErrors "github.com/drenteria/catalog-backend/pkg/errors"
	"github.com/drenteria/catalog-backend/pkg/logger"
)

// userFinder is the slice of the users repo the login flow needs.
type userFinder interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type Service struct {
	usersRepo userFinder
	jwt       config.JWTConfig
	logg      *logger.Logger
	verify    func(password, encoded string) (bool, error)
	now       func() time.Time
}

func NewService(usersRepo userFinder, jwt config.JWTConfig, logg *logger.Logger, verify func(string, string) (bool, error)) *Service {
	return &Service{
		usersRepo: usersRepo,
		jwt:       jwt,
		logg:      logg,
		verify:    verify,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// invalidCredentials is returned for every client-side login failure so the
// response never reveals whether the username exists.
func invalidCredentials() error {
	return pkgErrors.New(pkgErrors.CodeUnauthorized, "invalid credentials")
}

// Login checks the credentials and mints a one-hour access token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.usersRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidCredentials()
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternal, err, "looking up account")
	}

	ok, err := s.verify(req.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternal, err, "verifying password")
	}
	if !ok || !user.IsActive {
		return nil, invalidCredentials()
	}

	token, err := pkgAuth.MintAccessToken(s.jwt, s.now(), pkgAuth.AccessTokenPayload{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternal, err, "minting access token")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithUserID(ctx, user.ID.String()), "login succeeded")
	}

	return &LoginResponse{
		Token:    token,
		Username: user.Username,
		User:     users.FromModel(user),
	}, nil
}
