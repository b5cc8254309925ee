package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of journal_entries.
type JournalEntry struct {
	ID             string    `db:"id"`
	EntryDate      time.Time `db:"entry_date"`
	Description    string    `db:"description"`
	SequenceNumber int64     `db:"sequence_number"` // BIGSERIAL
	State          string    `db:"state"`
	Version        int       `db:"version"`
	AuditFields
}

// JournalLine is a row of journal_lines. LineNo keeps the submitted order.
type JournalLine struct {
	ID           string          `db:"id"`
	EntryID      string          `db:"entry_id"`
	LineNo       int             `db:"line_no"`
	AccountCode  string          `db:"account_code"`
	ThirdPartyID *string         `db:"third_party_id"`
	Debit        decimal.Decimal `db:"debit"`
	Credit       decimal.Decimal `db:"credit"`
	Description  string          `db:"description"`
}
