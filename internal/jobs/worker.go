package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hibiken/asynq"
)

const shutdownTimeout = 10 * time.Second

// TaskHandler binds a task type to its handler.
type TaskHandler struct {
	Type    string
	Handler asynq.HandlerFunc
}

// CronRegistration wires a cron expression to a prepared task.
type CronRegistration struct {
	Spec    string
	Task    *asynq.Task
	Options []asynq.Option
}

// WorkerConfig collects dependencies required to bootstrap the worker.
type WorkerConfig struct {
	RedisOpts   asynq.RedisConnOpt
	Logger      *slog.Logger
	Concurrency int
	Handlers    []TaskHandler
	Cron        []CronRegistration
}

// Worker processes queued tasks and, when cron entries are registered,
// enqueues scheduled ones.
type Worker struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	scheduler *asynq.Scheduler
	cronCount int
	logger    *slog.Logger
}

// slogAdapter routes asynq's internal logging through slog.
type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) Debug(args ...any) { a.logger.Debug(fmt.Sprint(args...)) }
func (a slogAdapter) Info(args ...any)  { a.logger.Info(fmt.Sprint(args...)) }
func (a slogAdapter) Warn(args ...any)  { a.logger.Warn(fmt.Sprint(args...)) }
func (a slogAdapter) Error(args ...any) { a.logger.Error(fmt.Sprint(args...)) }
func (a slogAdapter) Fatal(args ...any) {
	a.logger.Error(fmt.Sprint(args...), slog.Bool("fatal", true))
	os.Exit(1)
}

// taskFailureHandler logs every failed attempt with its retry position.
func taskFailureHandler(logger *slog.Logger) asynq.ErrorHandlerFunc {
	return func(ctx context.Context, task *asynq.Task, err error) {
		attrs := []any{slog.String("task", task.Type()), slog.Any("error", err)}
		if retried, ok := asynq.GetRetryCount(ctx); ok {
			attrs = append(attrs, slog.Int("retried", retried))
		}
		if maxRetry, ok := asynq.GetMaxRetry(ctx); ok {
			attrs = append(attrs, slog.Int("max_retry", maxRetry))
		}
		logger.Error("task failed", attrs...)
	}
}

// NewWorker constructs a Worker. Handlers or cron entries missing a type,
// handler, spec or task are skipped.
func NewWorker(cfg WorkerConfig) (*Worker, error) {
	if cfg.RedisOpts == nil {
		return nil, errors.New("worker: redis options required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "worker"))

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 2
	}

	w := &Worker{mux: asynq.NewServeMux(), logger: logger}
	w.server = asynq.NewServer(cfg.RedisOpts, asynq.Config{
		Concurrency:     concurrency,
		Queues:          map[string]int{QueueDefault: 1},
		Logger:          slogAdapter{logger: logger},
		ErrorHandler:    taskFailureHandler(logger),
		ShutdownTimeout: shutdownTimeout,
	})
	for _, h := range cfg.Handlers {
		if h.Type == "" || h.Handler == nil {
			continue
		}
		w.mux.HandleFunc(h.Type, h.Handler)
	}

	for _, entry := range cfg.Cron {
		if entry.Spec == "" || entry.Task == nil {
			continue
		}
		if w.scheduler == nil {
			w.scheduler = asynq.NewScheduler(cfg.RedisOpts, &asynq.SchedulerOpts{
				Location: time.UTC,
				Logger:   slogAdapter{logger: logger.With(slog.String("part", "scheduler"))},
			})
		}
		if _, err := w.scheduler.Register(entry.Spec, entry.Task, entry.Options...); err != nil {
			return nil, fmt.Errorf("worker: register cron %q for %s: %w", entry.Spec, entry.Task.Type(), err)
		}
		w.cronCount++
	}
	return w, nil
}

// Run processes tasks until ctx is cancelled, then drains in-flight work.
func (w *Worker) Run(ctx context.Context) error {
	if w == nil || w.server == nil {
		return errors.New("worker: not configured")
	}
	if err := w.server.Start(w.mux); err != nil {
		return fmt.Errorf("worker: start: %w", err)
	}
	w.logger.Info("processing tasks", slog.String("queue", QueueDefault))

	if w.scheduler != nil {
		if err := w.scheduler.Start(); err != nil {
			w.server.Shutdown()
			return fmt.Errorf("worker: start scheduler: %w", err)
		}
		w.logger.Info("scheduler started", slog.Int("entries", w.cronCount))
	}

	<-ctx.Done()
	w.logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))
	if w.scheduler != nil {
		w.scheduler.Shutdown()
	}
	w.server.Shutdown()
	w.logger.Info("shutdown complete")
	return ctx.Err()
}
