package services

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	// GetJournalEntryByID retrieves an entry with its lines.
	GetJournalEntryByID(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves a page of entries, newest first.
	ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams, userID string) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines write operations for journal entries
type JournalWriterSvc interface {
	// CreateJournalEntry validates and persists a new entry. With IsApproved the
	// balance guard runs before anything is written. If the entry is stored but
	// the approval step fails an *apperrors.ApprovalPendingError is returned.
	CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// ApproveEntry moves a draft to APROBADO. version is the caller's concurrency token.
	ApproveEntry(ctx context.Context, entryID string, version int, userID string) (*domain.JournalEntry, error)

	// VoidEntry moves a draft or approved entry to ANULADO.
	VoidEntry(ctx context.Context, entryID string, version int, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}

// VoucherSvcFacade defines voucher operations.
type VoucherSvcFacade interface {
	CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error)
	GetVoucherByID(ctx context.Context, id string, userID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, params dto.ListVouchersParams, userID string) ([]domain.Voucher, error)
}

// TaxSvcFacade exposes tax configuration and the tax-id utility.
type TaxSvcFacade interface {
	ListTaxRates(ctx context.Context, userID string) ([]domain.TaxRate, error)
	CheckDigit(ctx context.Context, taxID string) (*dto.CheckDigitResponse, error)
}
