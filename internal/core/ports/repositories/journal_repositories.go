package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// JournalReader defines read operations for journal entries
type JournalReader interface {
	// FindEntryByID retrieves an entry with its lines.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a page of entries, newest first, using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal entries
type JournalWriter interface {
	// InsertEntry persists the entry header and its lines atomically. The entry
	// is stored in the state it carries; the store assigns sequence number and version.
	InsertEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error)

	// UpdateEntryState moves an entry to state when its stored version equals
	// expectedVersion. It returns the new version, or a ConflictError.
	UpdateEntryState(ctx context.Context, entryID string, expectedVersion int, state domain.EntryState, updatedBy string, updatedAt time.Time) (int, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
