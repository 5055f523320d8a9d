package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobportal-backend/config"
	_ "go-jobportal-backend/docs" // swagger spec registration
	v1 "go-jobportal-backend/internal/delivery/http/v1"
	"go-jobportal-backend/internal/repository/postgres"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/auth"
	"go-jobportal-backend/pkg/cache"
	"go-jobportal-backend/pkg/database"
	"go-jobportal-backend/pkg/jobfeed"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/redis"
)

// @title           Job Portal API
// @version         1.0
// @description     Job board backend: accounts, postings, candidate profiles, applications, analytics and federated external listings.
// @host            localhost:5000
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting job portal backend", "port", cfg.Port)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Redis is optional; the external-jobs cache and rate limiter degrade to
	// in-process fallbacks without it.
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory fallbacks", "error", err)
	}
	defer redis.Close()

	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	analyticsRepo := postgres.NewAnalyticsRepository(dbPool)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiresIn)

	providers := []jobfeed.Provider{
		jobfeed.NewJSearchClient(cfg.RapidAPIKey),
		jobfeed.NewAdzunaClient(cfg.AdzunaAppID, cfg.AdzunaAppKey, cfg.AdzunaCountry),
	}
	externalCache := cache.New(redis.Client(), cfg.ExternalCacheCapacity)

	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	jobUC := usecase.NewJobUsecase(jobRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, profileRepo, userRepo)
	analyticsUC := usecase.NewAnalyticsUsecase(analyticsRepo)
	externalUC := usecase.NewExternalJobsUsecase(providers, externalCache, jobRepo, cfg.ExternalJobTTL)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ProfileUC:     profileUC,
		ApplicationUC: applicationUC,
		AnalyticsUC:   analyticsUC,
		ExternalUC:    externalUC,
		UserRepo:      userRepo,
		Tokens:        tokens,
		Config:        cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
	logger.Log.Info("Server exited")
}
