package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/drenteria/catalog-backend/api/middleware"
	"github.com/drenteria/catalog-backend/api/routes"
	authService "github.com/drenteria/catalog-backend/internal/auth"
	productsService "github.com/drenteria/catalog-backend/internal/products"
	usersService "github.com/drenteria/catalog-backend/internal/users"
	"github.com/drenteria/catalog-backend/pkg/config"
	"github.com/drenteria/catalog-backend/pkg/db"
	"github.com/drenteria/catalog-backend/pkg/logger"
	"github.com/drenteria/catalog-backend/pkg/migrate"
	"github.com/drenteria/catalog-backend/pkg/redis"
	"github.com/drenteria/catalog-backend/pkg/security"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	// redis is optional; without it the auth endpoints run unthrottled
	var limiter middleware.RateLimiterStore
	var cachePinger *redis.Client
	if cfg.Redis.URL != "" || cfg.Redis.Address != "" {
		redisClient, err := redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		limiter = redisClient
		cachePinger = redisClient
	} else {
		logg.Warn(context.Background(), "redis not configured, auth rate limiting disabled")
	}

	usersRepo := usersService.NewRepository(dbClient.DB())
	productsRepo := productsService.NewRepository(dbClient.DB())

	usersSvc := usersService.NewService(usersRepo, cfg.Password, logg, security.HashPassword)
	authSvc := authService.NewService(usersRepo, cfg.JWT, logg, security.VerifyPassword)
	productsSvc := productsService.NewService(productsRepo, usersRepo, cfg.Catalog, logg, nil)

	deps := routes.Dependencies{
		Config:      cfg,
		Logger:      logg,
		Auth:        authSvc,
		Users:       usersSvc,
		Products:    productsSvc,
		DB:          dbClient,
		RateLimiter: limiter,
	}
	if cachePinger != nil {
		deps.Cache = cachePinger
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.New(deps),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
