package repositories

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// VoucherReader defines read operations for vouchers
type VoucherReader interface {
	// FindVoucherByID retrieves a voucher with its lines.
	FindVoucherByID(ctx context.Context, id string) (*domain.Voucher, error)

	// ListVouchers returns vouchers newest first, optionally restricted to one type.
	ListVouchers(ctx context.Context, voucherType *domain.VoucherType) ([]domain.Voucher, error)
}

// VoucherWriter defines write operations for vouchers
type VoucherWriter interface {
	// SaveVoucher persists the voucher header and lines atomically.
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error
}

// VoucherRepositoryFacade combines all voucher repository interfaces
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
}

// TaxRateReader lists configured tax rates.
type TaxRateReader interface {
	ListActiveTaxRates(ctx context.Context) ([]domain.TaxRate, error)
}
