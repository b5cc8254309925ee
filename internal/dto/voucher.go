package dto

import (
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VoucherLineRequest is a single item of a new voucher. Derived amounts are computed server-side.
type VoucherLineRequest struct {
	Description   string          `json:"description" binding:"required"`
	AccountCode   *string         `json:"accountCode" binding:"omitempty,puc_code"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	IVARate       decimal.Decimal `json:"ivaRate"`
	RetentionRate decimal.Decimal `json:"retentionRate"`
}

// CreateVoucherRequest defines the data needed to create a voucher.
type CreateVoucherRequest struct {
	Type         domain.VoucherType   `json:"type" binding:"required,oneof=INGRESO EGRESO COMPRA VENTA NOTA_CONTABLE"`
	Date         string               `json:"date" binding:"required,datetime=2006-01-02"`
	ThirdPartyID *string              `json:"thirdPartyID" binding:"omitempty,uuid"`
	Description  string               `json:"description"`
	Lines        []VoucherLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ToDomainLines converts the request lines into voucher lines.
func (r CreateVoucherRequest) ToDomainLines() []domain.VoucherLine {
	lines := make([]domain.VoucherLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.VoucherLine{
			Description:   l.Description,
			AccountCode:   l.AccountCode,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			IVARate:       l.IVARate,
			RetentionRate: l.RetentionRate,
		}
	}
	return lines
}

// VoucherDate parses the request date.
func (r CreateVoucherRequest) VoucherDate() (time.Time, error) {
	return time.Parse(DateLayout, r.Date)
}

// ListVouchersParams defines query parameters for listing vouchers.
type ListVouchersParams struct {
	Type *domain.VoucherType `form:"type" binding:"omitempty,oneof=INGRESO EGRESO COMPRA VENTA NOTA_CONTABLE"`
}

// ListVouchersResponse wraps the list of vouchers.
type ListVouchersResponse struct {
	Vouchers []domain.Voucher `json:"vouchers"`
}
