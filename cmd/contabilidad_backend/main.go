package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/cache"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/core/services"
	"github.com/SscSPs/contabilidad_app/internal/handlers"
	"github.com/SscSPs/contabilidad_app/internal/jobs"
	"github.com/SscSPs/contabilidad_app/internal/middleware"
	"github.com/SscSPs/contabilidad_app/internal/platform/config"
	"github.com/SscSPs/contabilidad_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/contabilidad_app/internal/utils"
	"github.com/SscSPs/contabilidad_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Contabilidad Backend API
// @version 1.0
// @description Colombian double-entry bookkeeping: PUC, journal entries, vouchers and reports.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis is optional: without it reports are computed on every request,
	// the limiter keeps its counters in memory and scans cannot be queued.
	var (
		redisClient  *redis.Client
		reportCache  *cache.ReportCache
		scanEnqueuer handlers.ScanEnqueuer
	)
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("Invalid REDIS_URL", slog.String("error", err.Error()))
			os.Exit(1)
		}
		redisClient = redis.NewClient(redisOpts)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.String("error", err.Error()))
			}
		}()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis ping failed, report cache will fall back to direct computation", slog.String("error", err.Error()))
		}
		reportCache = cache.NewReportCache(redisClient, cfg.ReportCacheTTL)

		asynqOpts, err := asynq.ParseRedisURI(cfg.RedisURL)
		if err != nil {
			logger.Error("Invalid REDIS_URL for job queue", slog.String("error", err.Error()))
			os.Exit(1)
		}
		jobClient := jobs.NewClient(asynqOpts)
		defer func() { _ = jobClient.Close() }()
		scanEnqueuer = jobClient
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	var svcCache portssvc.ReportCache
	if reportCache != nil {
		svcCache = reportCache
	}
	serviceContainer := services.NewServiceContainer(repos, services.DefaultPolicy(), svcCache)

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if err := handlers.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, security headers, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(middleware.SecureHeaders(cfg.IsProduction))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteOptions{
		Middlewares: []gin.HandlerFunc{
			middleware.RateLimit(rateLimiter),
			middleware.PosthogMiddleware(posthogClient),
		},
		ScanEnqueuer: scanEnqueuer,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped")
}

// runMigrations applies every pending "up" migration through a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	// Check for dirty migrations after running Up.
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
