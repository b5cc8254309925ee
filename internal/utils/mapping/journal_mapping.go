package mapping

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		ID:             d.ID,
		EntryDate:      d.Date,
		Description:    d.Description,
		SequenceNumber: d.SequenceNumber,
		State:          string(d.State),
		Version:        d.Version,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry without lines
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		ID:             m.ID,
		Date:           m.EntryDate,
		Description:    m.Description,
		SequenceNumber: m.SequenceNumber,
		State:          domain.EntryState(m.State),
		Version:        m.Version,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLines converts domain lines, numbering them in order
func ToModelJournalLines(lines []domain.JournalLine) []models.JournalLine {
	ms := make([]models.JournalLine, len(lines))
	for i, l := range lines {
		ms[i] = models.JournalLine{
			ID:           l.ID,
			EntryID:      l.EntryID,
			LineNo:       i + 1,
			AccountCode:  l.AccountCode,
			ThirdPartyID: l.ThirdPartyID,
			Debit:        l.Debit,
			Credit:       l.Credit,
			Description:  l.Description,
		}
	}
	return ms
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		ID:           m.ID,
		EntryID:      m.EntryID,
		AccountCode:  m.AccountCode,
		ThirdPartyID: m.ThirdPartyID,
		Debit:        m.Debit,
		Credit:       m.Credit,
		Description:  m.Description,
	}
}
