package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	"github.com/SscSPs/contabilidad_app/internal/models"
	"github.com/SscSPs/contabilidad_app/internal/utils/mapping"
	"github.com/SscSPs/contabilidad_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	entryColumns = `id, entry_date, description, sequence_number, state, version, created_at, created_by, last_updated_at, last_updated_by`
	lineColumns  = `id, entry_id, line_no, account_code, third_party_id, debit, credit, description`
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and their lines.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryWithTx
var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.ID,
		&m.EntryDate,
		&m.Description,
		&m.SequenceNumber,
		&m.State,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanLine(row pgx.Row) (models.JournalLine, error) {
	var m models.JournalLine
	err := row.Scan(
		&m.ID,
		&m.EntryID,
		&m.LineNo,
		&m.AccountCode,
		&m.ThirdPartyID,
		&m.Debit,
		&m.Credit,
		&m.Description,
	)
	return m, err
}

// InsertEntry saves the entry header and its lines in one database transaction.
// The store assigns the sequence number and the initial version.
func (r *PgxJournalRepository) InsertEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored once the transaction is committed
	defer func() { _ = r.Rollback(ctx, tx) }()

	m := mapping.ToModelJournalEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (id, entry_date, description, state, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING sequence_number, version;
	`
	err = tx.QueryRow(ctx, entryQuery,
		m.ID,
		m.EntryDate,
		m.Description,
		m.State,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&m.SequenceNumber, &m.Version)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, apperrors.NewAppError(500, "failed to insert journal entry "+m.ID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `INSERT INTO journal_lines (` + lineColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	for _, l := range mapping.ToModelJournalLines(entry.Lines) {
		batch.Queue(lineQuery, l.ID, l.EntryID, l.LineNo, l.AccountCode, l.ThirdPartyID, l.Debit, l.Credit, l.Description)
	}
	// Close reports the first failed insert
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert lines for journal entry "+m.ID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	stored := mapping.ToDomainJournalEntry(m)
	stored.Lines = entry.Lines
	return &stored, nil
}

// UpdateEntryState applies a state change guarded by the version token. On a
// mismatch it reports the version currently stored.
func (r *PgxJournalRepository) UpdateEntryState(ctx context.Context, entryID string, expectedVersion int, state domain.EntryState, updatedBy string, updatedAt time.Time) (int, error) {
	query := `
		UPDATE journal_entries
		SET state = $3, version = version + 1, last_updated_at = $4, last_updated_by = $5
		WHERE id = $1 AND version = $2
		RETURNING version;
	`
	var newVersion int
	err := r.Pool.QueryRow(ctx, query, entryID, expectedVersion, string(state), updatedAt, updatedBy).Scan(&newVersion)
	if err == nil {
		return newVersion, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, apperrors.NewAppError(500, "failed to update state of journal entry "+entryID, err)
	}

	var current int
	err = r.Pool.QueryRow(ctx, `SELECT version FROM journal_entries WHERE id = $1;`, entryID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewNotFoundError("journal entry", entryID)
		}
		return 0, apperrors.NewAppError(500, "failed to read version of journal entry "+entryID, err)
	}
	return 0, &apperrors.ConflictError{Resource: "journal entry", ID: entryID, Expected: expectedVersion, Actual: current}
}

// FindEntryByID retrieves an entry with its lines in submission order.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE id = $1;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry "+entryID, err)
	}

	linesByEntry, err := findLinesByEntryIDs(ctx, r.Pool, []string{entryID})
	if err != nil {
		return nil, err
	}
	entry := mapping.ToDomainJournalEntry(m)
	entry.Lines = linesByEntry[entryID]
	return &entry, nil
}

// ListEntries retrieves a page of entries ordered by date and sequence number, newest first.
// The token encodes the (entry_date, sequence_number) of the last entry of the previous page.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells whether a next page exists
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + entryColumns + ` FROM journal_entries`
	orderByClause := `ORDER BY entry_date DESC, sequence_number DESC`
	args := []any{}
	cursorClause := ""

	if nextToken != nil && *nextToken != "" {
		lastDate, lastSequence, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewValidationError("invalid nextToken")
		}
		cursorClause = `WHERE (entry_date, sequence_number) < ($1, $2)`
		args = append(args, lastDate, lastSequence)
	}
	query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	ms := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	var nextTokenVal *string
	if len(ms) > limit {
		last := ms[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.SequenceNumber)
		nextTokenVal = &token
		ms = ms[:limit]
	}

	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.ID
	}
	linesByEntry, err := findLinesByEntryIDs(ctx, r.Pool, ids)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		entries[i] = mapping.ToDomainJournalEntry(m)
		entries[i].Lines = linesByEntry[m.ID]
	}
	return entries, nextTokenVal, nil
}

// findLinesByEntryIDs loads the lines of several entries keyed by entry ID.
func findLinesByEntryIDs(ctx context.Context, pool *pgxpool.Pool, entryIDs []string) (map[string][]domain.JournalLine, error) {
	result := make(map[string][]domain.JournalLine, len(entryIDs))
	if len(entryIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + lineColumns + ` FROM journal_lines WHERE entry_id = ANY($1) ORDER BY entry_id, line_no;`
	rows, err := pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		result[m.EntryID] = append(result[m.EntryID], mapping.ToDomainJournalLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal line rows", err)
	}
	return result, nil
}
