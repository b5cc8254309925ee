package accounting

import (
	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ValidateVoucherLines rejects negative quantities, prices and rates. Any
// non-negative rate is accepted.
func ValidateVoucherLines(lines []domain.VoucherLine) error {
	if len(lines) == 0 {
		return apperrors.NewValidationError("voucher must have at least one line")
	}
	for i, l := range lines {
		switch {
		case l.Quantity.IsNegative():
			return apperrors.NewValidationError("line %d: quantity must be non-negative", i+1)
		case l.UnitPrice.IsNegative():
			return apperrors.NewValidationError("line %d: unit price must be non-negative", i+1)
		case l.IVARate.IsNegative():
			return apperrors.NewValidationError("line %d: iva rate must be non-negative", i+1)
		case l.RetentionRate.IsNegative():
			return apperrors.NewValidationError("line %d: retention rate must be non-negative", i+1)
		}
	}
	return nil
}

// ComputeVoucherLine fills the derived amounts of a single line, each rounded
// to AmountScale so they match what the store keeps. IVA and retention are
// taken from the rounded subtotal.
func ComputeVoucherLine(l domain.VoucherLine) domain.VoucherLine {
	l.Subtotal = l.Quantity.Mul(l.UnitPrice).Round(AmountScale)
	l.IVA = l.Subtotal.Mul(l.IVARate).Div(hundred).Round(AmountScale)
	l.Retention = l.Subtotal.Mul(l.RetentionRate).Div(hundred).Round(AmountScale)
	return l
}

// ComputeVoucherTotals derives every line and reduces the rounded amounts:
// total = Σsubtotal + Σiva - Σretention.
func ComputeVoucherTotals(lines []domain.VoucherLine) (domain.VoucherTotals, []domain.VoucherLine) {
	out := make([]domain.VoucherLine, len(lines))
	totals := domain.VoucherTotals{
		Subtotal:  decimal.Zero,
		IVA:       decimal.Zero,
		Retention: decimal.Zero,
	}
	for i, l := range lines {
		l = ComputeVoucherLine(l)
		out[i] = l
		totals.Subtotal = totals.Subtotal.Add(l.Subtotal)
		totals.IVA = totals.IVA.Add(l.IVA)
		totals.Retention = totals.Retention.Add(l.Retention)
	}
	totals.Total = totals.Subtotal.Add(totals.IVA).Sub(totals.Retention)
	return totals, out
}
