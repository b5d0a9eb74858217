package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/gnwankwo/casting-agency/internal/config"
	"github.com/gnwankwo/casting-agency/internal/database"
	"github.com/gnwankwo/casting-agency/internal/handler"
	"github.com/gnwankwo/casting-agency/internal/middleware"
	"github.com/gnwankwo/casting-agency/internal/repository"
	"github.com/gnwankwo/casting-agency/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	// CORS is open for all origins and methods on all routes.
	e.Use(echomw.CORS())

	// Redis-backed middleware degrades to pass-through when Redis is down.
	// Both run inside the API route chain, behind the auth and permission
	// gates, so a cache hit can never answer an unauthenticated request.
	rdb := config.NewRedisClient()

	h := handler.NewHandler(
		repository.NewMovieRepo(db),
		repository.NewActorRepo(db),
		repository.NewCastRepo(db),
		repository.NewStarringRepo(db),
	)
	a := handler.NewAuthHandler(cfg, repository.NewUserRepo(db), repository.NewTokenRepo(db))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, a, cfg.JWTSecret)
	router.RegisterAPI(e, h, cfg.JWTSecret,
		middleware.RateLimit(config.LoadRateLimitConfig(), rdb),
		middleware.ResponseCache(config.LoadCacheConfig(), rdb),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
