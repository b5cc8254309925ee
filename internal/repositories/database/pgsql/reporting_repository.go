package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReportingRepository reads ledger lines for aggregation. Aggregation itself
// happens in the service so the cached and uncached paths share one engine.
type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// QueryLines returns lines joined with their entry and account. Lines whose
// account is missing from the chart keep their code and an empty name.
func (r *PgxReportingRepository) QueryLines(ctx context.Context, filter domain.LineFilter) ([]domain.LineRecord, error) {
	query := `
		SELECT e.id, e.entry_date, e.state, l.account_code,
		       COALESCE(a.name, ''), COALESCE(a.account_type, ''), COALESCE(a.nature, ''),
		       l.debit, l.credit
		FROM journal_lines l
		JOIN journal_entries e ON e.id = l.entry_id
		LEFT JOIN puc_accounts a ON a.code = l.account_code
		WHERE ($1::boolean = false OR e.state = 'APROBADO')
		  AND ($2::date IS NULL OR e.entry_date >= $2)
		  AND ($3::date IS NULL OR e.entry_date <= $3)
		ORDER BY l.account_code, e.entry_date, e.sequence_number, l.line_no;
	`
	rows, err := r.Pool.Query(ctx, query, filter.ApprovedOnly, dateOrNil(filter.DateRange.Start), dateOrNil(filter.DateRange.End))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger lines", err)
	}
	defer rows.Close()

	records := []domain.LineRecord{}
	for rows.Next() {
		var (
			rec                       domain.LineRecord
			state, accType, accNature string
		)
		if err := rows.Scan(
			&rec.EntryID, &rec.EntryDate, &state, &rec.AccountCode,
			&rec.AccountName, &accType, &accNature,
			&rec.Debit, &rec.Credit,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger line row", err)
		}
		rec.EntryState = domain.EntryState(state)
		rec.AccountType = domain.AccountType(accType)
		rec.AccountNature = domain.AccountNature(accNature)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger line rows", err)
	}
	return records, nil
}

// ListEntrySnapshots returns entries in state with their lines, oldest first.
func (r *PgxReportingRepository) ListEntrySnapshots(ctx context.Context, state domain.EntryState) ([]domain.EntrySnapshot, error) {
	query := `SELECT id, description FROM journal_entries WHERE state = $1 ORDER BY entry_date, sequence_number;`
	rows, err := r.Pool.Query(ctx, query, string(state))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries in state "+string(state), err)
	}
	defer rows.Close()

	snapshots := []domain.EntrySnapshot{}
	ids := []string{}
	for rows.Next() {
		s := domain.EntrySnapshot{State: state}
		if err := rows.Scan(&s.ID, &s.Description); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry snapshot row", err)
		}
		snapshots = append(snapshots, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry snapshot rows", err)
	}
	rows.Close()

	linesByEntry, err := findLinesByEntryIDs(ctx, r.Pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range snapshots {
		snapshots[i].Lines = linesByEntry[snapshots[i].ID]
	}
	return snapshots, nil
}

// dateOrNil keeps zero bounds out of the query so they read as open.
func dateOrNil(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return *t
}
