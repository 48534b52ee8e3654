package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/storage"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Job Board Backend API
// @version         1.0
// @description     Job board backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory without it)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		} else {
			defer redis.Close()
		}
	}

	// 5. Setup Media Storage
	var media storage.Uploader
	if cfg.S3Bucket != "" {
		store, err := storage.NewMediaStore(context.Background(), storage.Config{
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
		if err != nil {
			logger.Log.Error("Failed to initialize media storage", "error", err)
			os.Exit(1)
		}
		media = store
	} else {
		logger.Log.Warn("S3_BUCKET not configured, file uploads will fail")
		media = storage.Unconfigured{}
	}

	// 6. Register custom validators on Gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 7. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	adminRepo := postgres.NewAdminRepository(dbPool)

	// 8. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, applicationRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)
	adminUC := usecase.NewAdminUsecase(adminRepo)

	// 9. Session Tokens
	tokens := auth.NewManager(cfg.SecretKey)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		CompanyUC:     companyUC,
		ApplicationUC: applicationUC,
		AdminUC:       adminUC,
		Tokens:        tokens,
		Media:         media,
		DB:            dbPool,
		Config:        cfg,
	})

	// 11. Start Server
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
