package repositories

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// ReportingRepository exposes the raw ledger data the aggregation engine and
// anomaly detector work on.
type ReportingRepository interface {
	// QueryLines returns journal lines joined with entry header and account metadata.
	QueryLines(ctx context.Context, filter domain.LineFilter) ([]domain.LineRecord, error)

	// ListEntrySnapshots returns entries in the given state with their lines.
	ListEntrySnapshots(ctx context.Context, state domain.EntryState) ([]domain.EntrySnapshot, error)
}
