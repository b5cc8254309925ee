package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryState is the lifecycle state of a journal entry.
type EntryState string

const (
	EntryBorrador EntryState = "BORRADOR"
	EntryAprobado EntryState = "APROBADO"
	EntryAnulado  EntryState = "ANULADO"
)

// JournalEntry is a dated accounting event. It owns its lines.
type JournalEntry struct {
	ID             string        `json:"id"`
	Date           time.Time     `json:"date"`
	Description    string        `json:"description"`
	SequenceNumber int64         `json:"sequenceNumber"` // assigned by the store
	State          EntryState    `json:"state"`
	Version        int           `json:"version"` // optimistic concurrency token
	Lines          []JournalLine `json:"lines,omitempty"`
	AuditFields
}

// JournalLine is one debit or credit movement inside an entry.
type JournalLine struct {
	ID           string          `json:"id"`
	EntryID      string          `json:"entryID"`
	AccountCode  string          `json:"accountCode"`
	ThirdPartyID *string         `json:"thirdPartyID,omitempty"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Description  string          `json:"description"`
}

// BalanceResult is the outcome of a double-entry check.
type BalanceResult struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	IsBalanced  bool            `json:"isBalanced"`
}

// Difference returns |debit - credit|.
func (b BalanceResult) Difference() decimal.Decimal {
	return b.TotalDebit.Sub(b.TotalCredit).Abs()
}

// LineRecord is a journal line joined with its entry header and account
// metadata, as returned by the store for reporting. Account fields are empty
// when the referenced account no longer exists.
type LineRecord struct {
	EntryID       string          `json:"entryID"`
	EntryDate     time.Time       `json:"entryDate"`
	EntryState    EntryState      `json:"entryState"`
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	AccountNature AccountNature   `json:"accountNature"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// EntrySnapshot is an entry header with its lines, used by the anomaly detector.
type EntrySnapshot struct {
	ID          string
	Description string
	State       EntryState
	Lines       []JournalLine
}

// LineFilter narrows QueryLines.
type LineFilter struct {
	ApprovedOnly bool
	DateRange    DateRange
}
