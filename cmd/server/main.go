package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/artifec12/event-tracker/internal/config"
	"github.com/artifec12/event-tracker/internal/database"
	"github.com/artifec12/event-tracker/internal/handler"
	"github.com/artifec12/event-tracker/internal/middleware"
	"github.com/artifec12/event-tracker/internal/queue"
	"github.com/artifec12/event-tracker/internal/repository"
	"github.com/artifec12/event-tracker/internal/router"
)

func main() {
	// .env is a local development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	events := repository.NewEventRepo(db)

	// Redis is optional; without it the limiter and cache are pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and caching disabled")
	}
	limiter := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)
	cache := middleware.CacheGET(config.LoadCacheConfig(), rdb)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users), cfg.JWTSecret, limiter)
	router.RegisterEvents(e, handler.NewEventHandler(cfg, events), cfg.JWTSecret, cache)

	// Activity consumer runs for the life of the process, reconnecting on
	// broker failures.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
