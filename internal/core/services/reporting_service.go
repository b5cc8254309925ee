package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/SscSPs/contabilidad_app/internal/core/accounting"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/export"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	cache         portssvc.ReportCache
	group         singleflight.Group
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingAuthorizer sets the authorizer for the reporting service.
func WithReportingAuthorizer(authorizer portssvc.AuthorizerSvc) ReportingServiceOption {
	return func(s *reportingService) {
		s.Authorizer = authorizer
	}
}

// WithReportingCache enables the versioned report cache.
func WithReportingCache(cache portssvc.ReportCache) ReportingServiceOption {
	return func(s *reportingService) {
		s.cache = cache
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// rangeToken renders a date range as a cache key fragment.
func rangeToken(r domain.DateRange) string {
	start, end := "open", "open"
	if r.Start != nil {
		start = r.Start.Format("20060102")
	}
	if r.End != nil {
		end = r.End.Format("20060102")
	}
	return start + "-" + end
}

// loaderError marks a failure of the computation itself, as opposed to the cache.
type loaderError struct{ err error }

func (e *loaderError) Error() string { return e.err.Error() }
func (e *loaderError) Unwrap() error { return e.err }

// fetchReport computes a report through the cache. Concurrent identical
// requests share one computation, which runs detached from any single caller's
// cancellation so one disconnecting client does not fail the others. A cache
// failure degrades to direct computation.
func fetchReport[T any](ctx context.Context, s *reportingService, parts []string, compute func(context.Context) (T, error)) (*T, error) {
	flightKey := strings.Join(parts, ":")
	ch := s.group.DoChan(flightKey, func() (any, error) {
		flightCtx := context.WithoutCancel(ctx)
		if s.cache == nil {
			v, err := compute(flightCtx)
			return &v, err
		}

		key, err := s.cache.BuildKey(flightCtx, parts...)
		if err != nil {
			s.LogWarn(flightCtx, err, "Report cache unavailable", slog.String("report", flightKey))
			v, err := compute(flightCtx)
			return &v, err
		}

		var (
			out      T
			computed *T
		)
		err = s.cache.FetchJSON(flightCtx, key, &out, func(ctx context.Context) (any, error) {
			v, err := compute(ctx)
			if err != nil {
				return nil, &loaderError{err: err}
			}
			computed = &v
			return v, nil
		})
		if err == nil {
			return &out, nil
		}
		var le *loaderError
		if errors.As(err, &le) {
			return nil, le.err
		}
		if computed != nil {
			s.LogWarn(flightCtx, err, "Failed to store report in cache", slog.String("report", flightKey))
			return computed, nil
		}
		s.LogWarn(flightCtx, err, "Report cache failed, computing directly", slog.String("report", flightKey))
		v, err := compute(flightCtx)
		return &v, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*T), nil
	}
}

func (s *reportingService) approvedLines(ctx context.Context, r domain.DateRange) ([]domain.LineRecord, error) {
	lines, err := s.reportingRepo.QueryLines(ctx, domain.LineFilter{ApprovedOnly: true, DateRange: r})
	if err != nil {
		s.LogError(ctx, err, "Failed to query ledger lines",
			slog.String("range", rangeToken(r)))
		return nil, err
	}
	return lines, nil
}

// TrialBalance generates the trial balance for approved entries in the range
func (s *reportingService) TrialBalance(ctx context.Context, r domain.DateRange, userID string) (*domain.TrialBalance, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermReports); err != nil {
		return nil, err
	}
	return s.trialBalance(ctx, r)
}

func (s *reportingService) trialBalance(ctx context.Context, r domain.DateRange) (*domain.TrialBalance, error) {
	tb, err := fetchReport(ctx, s, []string{"reports", "trial_balance", rangeToken(r)}, func(ctx context.Context) (domain.TrialBalance, error) {
		lines, err := s.approvedLines(ctx, r)
		if err != nil {
			return domain.TrialBalance{}, err
		}
		return accounting.ComputeTrialBalance(lines, r), nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Trial balance generated",
		slog.String("range", rangeToken(r)),
		slog.Int("row_count", len(tb.Accounts)),
		slog.Bool("is_balanced", tb.IsBalanced))
	return tb, nil
}

// IncomeStatement generates the income statement for approved entries in the range
func (s *reportingService) IncomeStatement(ctx context.Context, r domain.DateRange, userID string) (*domain.IncomeStatement, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermReports); err != nil {
		return nil, err
	}
	return s.incomeStatement(ctx, r)
}

func (s *reportingService) incomeStatement(ctx context.Context, r domain.DateRange) (*domain.IncomeStatement, error) {
	return fetchReport(ctx, s, []string{"reports", "income_statement", rangeToken(r)}, func(ctx context.Context) (domain.IncomeStatement, error) {
		lines, err := s.approvedLines(ctx, r)
		if err != nil {
			return domain.IncomeStatement{}, err
		}
		return accounting.ComputeIncomeStatement(lines, r), nil
	})
}

// FinancialMetrics summarises income and expenses of approved entries by month
func (s *reportingService) FinancialMetrics(ctx context.Context, userID string) (*domain.FinancialMetrics, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermReports); err != nil {
		return nil, err
	}
	return fetchReport(ctx, s, []string{"reports", "metrics"}, func(ctx context.Context) (domain.FinancialMetrics, error) {
		lines, err := s.approvedLines(ctx, domain.DateRange{})
		if err != nil {
			return domain.FinancialMetrics{}, err
		}
		return accounting.ComputeFinancialMetrics(lines), nil
	})
}

func (s *reportingService) TrialBalancePDF(ctx context.Context, r domain.DateRange, userID string) ([]byte, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermReports); err != nil {
		return nil, err
	}
	tb, err := s.trialBalance(ctx, r)
	if err != nil {
		return nil, err
	}
	pdf, err := export.TrialBalancePDF(*tb, r, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to render trial balance PDF")
		return nil, err
	}
	return pdf, nil
}

func (s *reportingService) IncomeStatementPDF(ctx context.Context, r domain.DateRange, userID string) ([]byte, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermReports); err != nil {
		return nil, err
	}
	is, err := s.incomeStatement(ctx, r)
	if err != nil {
		return nil, err
	}
	pdf, err := export.IncomeStatementPDF(*is, r, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to render income statement PDF")
		return nil, err
	}
	return pdf, nil
}
