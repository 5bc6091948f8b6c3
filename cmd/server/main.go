package main // Entry point package

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/job-board-api/internal/config"
	"github.com/iliyamo/job-board-api/internal/database"
	"github.com/iliyamo/job-board-api/internal/handler"
	"github.com/iliyamo/job-board-api/internal/middleware"
	"github.com/iliyamo/job-board-api/internal/queue"
	"github.com/iliyamo/job-board-api/internal/repository"
	"github.com/iliyamo/job-board-api/internal/router"
	"github.com/iliyamo/job-board-api/internal/service"
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

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Repositories
	userRepo := repository.NewUserRepo(db)
	companyRepo := repository.NewCompanyRepo(db)
	jobRepo := repository.NewJobRepo(db)
	applicationRepo := repository.NewApplicationRepo(db)
	locationRepo := repository.NewLocationRepo(db)

	// Services. The event publisher is nil when RABBITMQ_URL is unset,
	// which disables publishing without any conditional at call sites.
	locationSvc := service.NewLocationService(locationRepo)
	userSvc := service.NewUserService(userRepo, applicationRepo, cfg.BcryptCost)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTTLMin, cfg.BcryptCost)
	var events service.EventPublisher
	if pub := queue.NewPublisher(cfg.AMQPURL); pub != nil {
		events = pub
	}
	companySvc := service.NewCompanyService(companyRepo, jobRepo, applicationRepo, locationSvc, events, logger)

	// Redis is optional: cache and rate limiting degrade to no-ops
	// when the client cannot be built.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: cache and rate limiting disabled")
	}
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	router.RegisterRoutes(e, router.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		Users:     handler.NewUserHandler(userSvc),
		Companies: handler.NewCompanyHandler(companySvc),
		Locations: handler.NewLocationHandler(locationSvc),
	}, cfg.JWTSecret, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
