package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-devconnector-backend/config"
	v1 "go-devconnector-backend/internal/delivery/http/v1"
	"go-devconnector-backend/internal/repository/postgres"
	"go-devconnector-backend/internal/usecase"
	"go-devconnector-backend/pkg/database"
	"go-devconnector-backend/pkg/github"
	"go-devconnector-backend/pkg/logger"
	"go-devconnector-backend/pkg/redis"
	"go-devconnector-backend/pkg/token"
	"go-devconnector-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config (missing JWT secret or DB URL is fatal)
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting devconnector backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(context.Background(), cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.RunMigrations(cfg.DBUrl); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (optional; rate limiting and GitHub caching degrade without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-process fallbacks", "error", err)
	}
	defer redis.Close()

	// 5. Setup Token Service
	tokens, err := token.NewService(cfg.JWTSecret, time.Duration(cfg.JWTTTLSeconds)*time.Second)
	if err != nil {
		logger.Log.Error("Failed to initialize token service", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	postRepo := postgres.NewPostRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	githubClient := github.NewClient(cfg.GithubAPIURL, cfg.GithubToken, redis.Client(),
		time.Duration(cfg.GithubCacheSeconds)*time.Second)

	authUC := usecase.NewAuthUsecase(userRepo, tokens, validate)
	profileUC := usecase.NewProfileUsecase(profileRepo, userRepo, postRepo, githubClient, validate)
	postUC := usecase.NewPostUsecase(postRepo, userRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:    authUC,
		ProfileUC: profileUC,
		PostUC:    postUC,
		Tokens:    tokens,
		Config:    cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
