package services

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// ReportingService defines operations for generating financial reports.
// Only lines of approved entries are aggregated.
type ReportingService interface {
	// TrialBalance summarises debits and credits per account within the range
	TrialBalance(ctx context.Context, r domain.DateRange, userID string) (*domain.TrialBalance, error)

	// IncomeStatement derives income, cost of sales and expenses within the range
	IncomeStatement(ctx context.Context, r domain.DateRange, userID string) (*domain.IncomeStatement, error)

	// FinancialMetrics returns income, expenses, profit and the monthly history
	FinancialMetrics(ctx context.Context, userID string) (*domain.FinancialMetrics, error)

	// TrialBalancePDF renders the trial balance as a PDF document
	TrialBalancePDF(ctx context.Context, r domain.DateRange, userID string) ([]byte, error)

	// IncomeStatementPDF renders the income statement as a PDF document
	IncomeStatementPDF(ctx context.Context, r domain.DateRange, userID string) ([]byte, error)
}

// AnomalySvc runs the diagnostic rules over the current ledger.
type AnomalySvc interface {
	// DetectAnomalies authorizes the caller and scans the ledger.
	DetectAnomalies(ctx context.Context, userID string) ([]domain.Finding, error)

	// Scan runs the detector without an interactive caller, for scheduled jobs.
	Scan(ctx context.Context) ([]domain.Finding, error)
}

// ReportCache is a versioned cache for computed reports. Bump invalidates every entry.
type ReportCache interface {
	BuildKey(ctx context.Context, parts ...string) (string, error)
	FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error
	Bump(ctx context.Context) error
}
