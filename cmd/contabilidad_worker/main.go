package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/contabilidad_app/internal/core/services"
	"github.com/SscSPs/contabilidad_app/internal/jobs"
	"github.com/SscSPs/contabilidad_app/internal/platform/config"
	"github.com/SscSPs/contabilidad_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/contabilidad_app/pkg/database"
	"github.com/hibiken/asynq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.RedisURL == "" {
		logger.Error("REDIS_URL is required to run the worker")
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	redisOpts, err := asynq.ParseRedisURI(cfg.RedisURL)
	if err != nil {
		logger.Error("Invalid REDIS_URL", slog.String("error", err.Error()))
		os.Exit(1)
	}

	container := services.NewServiceContainer(pgsql.NewRepositoryProvider(dbPool), services.DefaultPolicy(), nil)
	scanJob := jobs.NewAnomalyScanJob(container.Anomaly, logger)

	var cron []jobs.CronRegistration
	if cfg.AnomalyScanCron != "" {
		task, err := jobs.NewAnomalyScanTask(jobs.AnomalyScanPayload{RequestedBy: "scheduler"})
		if err != nil {
			logger.Error("Failed to build scheduled scan task", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cron = append(cron, jobs.CronRegistration{
			Spec:    cfg.AnomalyScanCron,
			Task:    task,
			Options: []asynq.Option{asynq.Queue(jobs.QueueDefault)},
		})
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: redisOpts,
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskAnomalyScan, Handler: scanJob.Handle},
		},
		Cron: cron,
	})
	if err != nil {
		logger.Error("Failed to create worker", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Worker starting", slog.String("anomaly_scan_cron", cfg.AnomalyScanCron))
	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Worker stopped")
}
