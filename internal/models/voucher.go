package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher is a row of vouchers. Totals are stored as computed at creation.
type Voucher struct {
	ID           string          `db:"id"`
	VoucherType  string          `db:"voucher_type"`
	VoucherDate  time.Time       `db:"voucher_date"`
	ThirdPartyID *string         `db:"third_party_id"`
	Description  string          `db:"description"`
	Subtotal     decimal.Decimal `db:"subtotal"`
	IVA          decimal.Decimal `db:"iva"`
	Retention    decimal.Decimal `db:"retention"`
	Total        decimal.Decimal `db:"total"`
	AuditFields
}

// VoucherLine is a row of voucher_lines.
type VoucherLine struct {
	ID            string          `db:"id"`
	VoucherID     string          `db:"voucher_id"`
	LineNo        int             `db:"line_no"`
	Description   string          `db:"description"`
	AccountCode   *string         `db:"account_code"`
	Quantity      decimal.Decimal `db:"quantity"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	IVARate       decimal.Decimal `db:"iva_rate"`
	RetentionRate decimal.Decimal `db:"retention_rate"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	IVA           decimal.Decimal `db:"iva"`
	Retention     decimal.Decimal `db:"retention"`
}

// TaxRate is a row of tax_rates.
type TaxRate struct {
	ID       string          `db:"id"`
	Name     string          `db:"name"`
	TaxType  string          `db:"tax_type"`
	Rate     decimal.Decimal `db:"rate"`
	IsActive bool            `db:"is_active"`
}
