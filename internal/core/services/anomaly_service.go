package services

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/contabilidad_app/internal/core/accounting"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
)

type anomalyService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewAnomalyService creates the diagnostics service. Use WithClock to pin the evaluation time.
func NewAnomalyService(repo portsrepo.ReportingRepository, options ...ServiceOption) portssvc.AnomalySvc {
	svc := &anomalyService{reportingRepo: repo}
	for _, option := range options {
		option(&svc.BaseService)
	}
	return svc
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

var _ portssvc.AnomalySvc = (*anomalyService)(nil)

func (s *anomalyService) DetectAnomalies(ctx context.Context, userID string) ([]domain.Finding, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermReports); err != nil {
		return nil, err
	}
	return s.Scan(ctx)
}

// Scan fetches the drafts and the recent approved lines concurrently, then runs the detector.
func (s *anomalyService) Scan(ctx context.Context) ([]domain.Finding, error) {
	now := s.Now()
	start := now.Add(-accounting.UnusualMovementWindow)

	var (
		drafts []domain.EntrySnapshot
		lines  []domain.LineRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		drafts, err = s.reportingRepo.ListEntrySnapshots(gctx, domain.EntryBorrador)
		return err
	})
	g.Go(func() error {
		var err error
		lines, err = s.reportingRepo.QueryLines(gctx, domain.LineFilter{
			ApprovedOnly: true,
			DateRange:    domain.DateRange{Start: &start, End: &now},
		})
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load ledger snapshot for anomaly scan")
		return nil, err
	}

	findings := accounting.DetectAnomalies(drafts, lines, now)
	s.LogInfo(ctx, "Anomaly scan completed",
		slog.Int("draft_count", len(drafts)),
		slog.Int("finding_count", len(findings)))
	return findings, nil
}
