package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/drenteria/catalog-backend/api/controllers"
	"github.com/drenteria/catalog-backend/api/middleware"
	authService "github.com/drenteria/catalog-backend/internal/auth"
	productsService "github.com/drenteria/catalog-backend/internal/products"
	usersService "github.com/drenteria/catalog-backend/internal/users"
	"github.com/drenteria/catalog-backend/pkg/config"
	"github.com/drenteria/catalog-backend/pkg/logger"
)

// Dependencies carries everything the router needs. RateLimiter and the
// Pingers may be nil; the matching surfaces degrade gracefully.
type Dependencies struct {
	Config      *config.Config
	Logger      *logger.Logger
	Auth        *authService.Service
	Users       *usersService.Service
	Products    *productsService.Service
	DB          controllers.Pinger
	Cache       controllers.Pinger
	RateLimiter middleware.RateLimiterStore
}

// New assembles the full HTTP surface.
func New(deps Dependencies) http.Handler {
	logg := deps.Logger
	cfg := deps.Config

	authCtrl := controllers.NewAuthController(deps.Auth, deps.Users, logg)
	usersCtrl := controllers.NewUsersController(deps.Users, logg)
	productsCtrl := controllers.NewProductsController(deps.Products, logg)
	healthCtrl := controllers.NewHealthController(deps.DB, deps.Cache, logg)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUsernameLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		0,
	)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer(logg))
	r.Use(middleware.RequestID(logg))
	r.Use(middleware.Logging(logg))

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", healthCtrl.Live)
		r.Get("/ready", healthCtrl.Ready)
	})

	r.Route("/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, deps.RateLimiter, logg)).
			Post("/register", authCtrl.Register)
		r.With(middleware.AuthRateLimit(loginPolicy, deps.RateLimiter, logg)).
			Post("/login", authCtrl.Login)

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))

			r.With(middleware.RequireAdmin(logg)).Get("/", usersCtrl.List)
			r.Get("/me", usersCtrl.Me)

			r.Route("/{id}", func(r chi.Router) {
				r.With(middleware.RequireSelfOrAdmin("id", logg)).Get("/", usersCtrl.Get)
				r.With(middleware.RequireSelfOrAdmin("id", logg)).Put("/", usersCtrl.Update)
				r.With(middleware.RequireAdmin(logg)).Delete("/", usersCtrl.Delete)
			})
		})
	})

	r.Route("/products", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/", productsCtrl.List)
		r.Get("/{id}", productsCtrl.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(logg))
			r.Post("/", productsCtrl.Create)
			r.Put("/{id}", productsCtrl.Update)
			r.Delete("/{id}", productsCtrl.Delete)
		})
	})

	return r
}
