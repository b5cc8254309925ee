package dto

import (
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format accepted on the API.
const DateLayout = "2006-01-02"

// JournalLineRequest is a single debit or credit line of a new entry.
type JournalLineRequest struct {
	AccountCode  string          `json:"accountCode" binding:"required,puc_code"`
	ThirdPartyID *string         `json:"thirdPartyID" binding:"omitempty,uuid"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Description  string          `json:"description"`
}

// CreateJournalEntryRequest defines the data needed to create a journal entry.
// When IsApproved is set the lines must balance before anything is persisted.
type CreateJournalEntryRequest struct {
	Date        string               `json:"date" binding:"required,datetime=2006-01-02"`
	Description string               `json:"description" binding:"required"`
	Lines       []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
	IsApproved  bool                 `json:"isApproved"`
}

// ToDomainLines converts the request lines into journal lines.
func (r CreateJournalEntryRequest) ToDomainLines() []domain.JournalLine {
	lines := make([]domain.JournalLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.JournalLine{
			AccountCode:  l.AccountCode,
			ThirdPartyID: l.ThirdPartyID,
			Debit:        l.Debit,
			Credit:       l.Credit,
			Description:  l.Description,
		}
	}
	return lines
}

// EntryDate parses the request date.
func (r CreateJournalEntryRequest) EntryDate() (time.Time, error) {
	return time.Parse(DateLayout, r.Date)
}

// ChangeEntryStateRequest carries the version token for approve and void.
type ChangeEntryStateRequest struct {
	Version int `json:"version" binding:"required,min=1"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID       string          `json:"lineID"`
	AccountCode  string          `json:"accountCode"`
	ThirdPartyID *string         `json:"thirdPartyID,omitempty"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Description  string          `json:"description"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID        string                `json:"entryID"`
	Date           string                `json:"date"`
	Description    string                `json:"description"`
	SequenceNumber int64                 `json:"sequenceNumber"`
	State          domain.EntryState     `json:"state"`
	Version        int                   `json:"version"`
	TotalDebit     decimal.Decimal       `json:"totalDebit"`
	TotalCredit    decimal.Decimal       `json:"totalCredit"`
	Lines          []JournalLineResponse `json:"lines,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	CreatedBy      string                `json:"createdBy"`
	LastUpdatedAt  time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy  string                `json:"lastUpdatedBy"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:        e.ID,
		Date:           e.Date.Format(DateLayout),
		Description:    e.Description,
		SequenceNumber: e.SequenceNumber,
		State:          e.State,
		Version:        e.Version,
		TotalDebit:     decimal.Zero,
		TotalCredit:    decimal.Zero,
		CreatedAt:      e.CreatedAt,
		CreatedBy:      e.CreatedBy,
		LastUpdatedAt:  e.LastUpdatedAt,
		LastUpdatedBy:  e.LastUpdatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(e.Lines))
	}
	for i, l := range e.Lines {
		resp.Lines[i] = JournalLineResponse{
			LineID:       l.ID,
			AccountCode:  l.AccountCode,
			ThirdPartyID: l.ThirdPartyID,
			Debit:        l.Debit,
			Credit:       l.Credit,
			Description:  l.Description,
		}
		resp.TotalDebit = resp.TotalDebit.Add(l.Debit)
		resp.TotalCredit = resp.TotalCredit.Add(l.Credit)
	}
	return resp
}

// ListJournalEntriesParams defines query parameters for listing entries.
type ListJournalEntriesParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListJournalEntriesResponse wraps a page of entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ApprovalPendingResponse is returned with 202 when the entry was stored as a
// draft but its approval could not be recorded. Retry via the approve endpoint.
type ApprovalPendingResponse struct {
	EntryID string            `json:"entryID"`
	State   domain.EntryState `json:"state"`
	Version int               `json:"version"`
	Message string            `json:"message"`
}
