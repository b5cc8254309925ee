package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType classifies a voucher (comprobante).
type VoucherType string

const (
	VoucherIngreso      VoucherType = "INGRESO"
	VoucherEgreso       VoucherType = "EGRESO"
	VoucherCompra       VoucherType = "COMPRA"
	VoucherVenta        VoucherType = "VENTA"
	VoucherNotaContable VoucherType = "NOTA_CONTABLE"
)

// IsValidVoucherType reports whether t is a supported voucher type.
func IsValidVoucherType(t VoucherType) bool {
	switch t {
	case VoucherIngreso, VoucherEgreso, VoucherCompra, VoucherVenta, VoucherNotaContable:
		return true
	}
	return false
}

// Voucher is a commercial document with derived tax totals.
type Voucher struct {
	ID           string        `json:"id"`
	Type         VoucherType   `json:"type"`
	Date         time.Time     `json:"date"`
	ThirdPartyID *string       `json:"thirdPartyID,omitempty"`
	Description  string        `json:"description"`
	Lines        []VoucherLine `json:"lines,omitempty"`
	VoucherTotals
	AuditFields
}

// VoucherLine is an item of a voucher. Subtotal, IVA and Retention are derived.
type VoucherLine struct {
	ID            string          `json:"id"`
	VoucherID     string          `json:"voucherID"`
	Description   string          `json:"description"`
	AccountCode   *string         `json:"accountCode,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	IVARate       decimal.Decimal `json:"ivaRate"`
	RetentionRate decimal.Decimal `json:"retentionRate"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	IVA           decimal.Decimal `json:"iva"`
	Retention     decimal.Decimal `json:"retention"`
}

// VoucherTotals are the reductions over a voucher's lines.
type VoucherTotals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	IVA       decimal.Decimal `json:"iva"`
	Retention decimal.Decimal `json:"retention"`
	Total     decimal.Decimal `json:"total"`
}
