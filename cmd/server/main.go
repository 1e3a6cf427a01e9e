package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/veena-verse/bookshop-backend/internal/cache"
	"github.com/veena-verse/bookshop-backend/internal/config"
	"github.com/veena-verse/bookshop-backend/internal/database"
	"github.com/veena-verse/bookshop-backend/internal/handler"
	"github.com/veena-verse/bookshop-backend/internal/queue"
	"github.com/veena-verse/bookshop-backend/internal/repository"
	"github.com/veena-verse/bookshop-backend/internal/router"
	"github.com/veena-verse/bookshop-backend/internal/storage"
	"github.com/veena-verse/bookshop-backend/internal/validation"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the catalog cache and the request-form rate limiter.
	// Both degrade to pass-through when it is absent.
	rdb := config.NewRedisClient()
	store := cache.New(rdb, config.LoadCacheConfig())

	covers := storage.NewCovers(cfg.StorageBaseURL, cfg.StorageBucket, cfg.StorageKey)

	books := repository.NewBookRepo(db)
	requests := repository.NewRequestRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	// Seed the admin account when bootstrap credentials are configured.
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		created, err := users.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword, cfg.BcryptCost)
		cancel()
		if err != nil {
			log.Fatalf("admin bootstrap: %v", err)
		}
		if created {
			log.Printf("admin account created for %s", cfg.AdminEmail)
		}
	}

	// The request-created consumer runs for the life of the process and
	// reconnects on its own; a missing broker only disables the log feed.
	go func() {
		if err := queue.StartRequestConsumer(); err != nil {
			log.Printf("request consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Validator = validation.New()

	authH := handler.NewAuthHandler(cfg, users, tokens)
	publicH := handler.NewPublicHandler(cfg, books, requests, covers, store)
	adminH := handler.NewAdminHandler(books, requests, covers, store)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, publicH, rdb)
	router.RegisterAdmin(e, adminH, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
