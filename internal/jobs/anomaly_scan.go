package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// AnomalyScanner runs the detector over a fresh ledger snapshot.
type AnomalyScanner interface {
	Scan(ctx context.Context) ([]domain.Finding, error)
}

// AnomalyScanJob logs every finding at a level matching its severity.
type AnomalyScanJob struct {
	Scanner AnomalyScanner
	Logger  *slog.Logger
}

// NewAnomalyScanJob initialises the anomaly scan handler.
func NewAnomalyScanJob(scanner AnomalyScanner, logger *slog.Logger) *AnomalyScanJob {
	return &AnomalyScanJob{Scanner: scanner, Logger: logger}
}

// Handle executes the anomaly scan.
func (j *AnomalyScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Scanner == nil {
		return errors.New("anomaly scan: handler not configured")
	}
	var payload AnomalyScanPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
	}

	start := time.Now()
	logger := j.logger().With(slog.String("task", TaskAnomalyScan))
	if payload.RequestedBy != "" {
		logger = logger.With(slog.String("requested_by", payload.RequestedBy))
	}
	logger.Info("starting anomaly scan")

	findings, err := j.Scanner.Scan(ctx)
	if err != nil {
		logger.Error("scan failed", slog.Any("error", err))
		return err
	}

	for _, f := range findings {
		logger.Log(ctx, levelFor(f.Severity), f.Title,
			slog.String("severity", string(f.Severity)),
			slog.String("description", f.Description),
			slog.String("suggestion", f.Suggestion),
		)
	}

	logger.Info("completed anomaly scan",
		slog.Int("findings", len(findings)),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

func (j *AnomalyScanJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}

func levelFor(s domain.Severity) slog.Level {
	switch s {
	case domain.SeverityError:
		return slog.LevelError
	case domain.SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
