package mapping

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/models"
)

// ToModelVoucher converts a domain Voucher header to a model Voucher
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		ID:           d.ID,
		VoucherType:  string(d.Type),
		VoucherDate:  d.Date,
		ThirdPartyID: d.ThirdPartyID,
		Description:  d.Description,
		Subtotal:     d.Subtotal,
		IVA:          d.IVA,
		Retention:    d.Retention,
		Total:        d.Total,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model Voucher to a domain Voucher without lines
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	return domain.Voucher{
		ID:           m.ID,
		Type:         domain.VoucherType(m.VoucherType),
		Date:         m.VoucherDate,
		ThirdPartyID: m.ThirdPartyID,
		Description:  m.Description,
		VoucherTotals: domain.VoucherTotals{
			Subtotal:  m.Subtotal,
			IVA:       m.IVA,
			Retention: m.Retention,
			Total:     m.Total,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelVoucherLines converts domain lines, numbering them in order
func ToModelVoucherLines(lines []domain.VoucherLine) []models.VoucherLine {
	ms := make([]models.VoucherLine, len(lines))
	for i, l := range lines {
		ms[i] = models.VoucherLine{
			ID:            l.ID,
			VoucherID:     l.VoucherID,
			LineNo:        i + 1,
			Description:   l.Description,
			AccountCode:   l.AccountCode,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			IVARate:       l.IVARate,
			RetentionRate: l.RetentionRate,
			Subtotal:      l.Subtotal,
			IVA:           l.IVA,
			Retention:     l.Retention,
		}
	}
	return ms
}

// ToDomainVoucherLine converts a model VoucherLine to a domain VoucherLine
func ToDomainVoucherLine(m models.VoucherLine) domain.VoucherLine {
	return domain.VoucherLine{
		ID:            m.ID,
		VoucherID:     m.VoucherID,
		Description:   m.Description,
		AccountCode:   m.AccountCode,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		IVARate:       m.IVARate,
		RetentionRate: m.RetentionRate,
		Subtotal:      m.Subtotal,
		IVA:           m.IVA,
		Retention:     m.Retention,
	}
}

// ToDomainTaxRate converts a model TaxRate to a domain TaxRate
func ToDomainTaxRate(m models.TaxRate) domain.TaxRate {
	return domain.TaxRate{
		ID:       m.ID,
		Name:     m.Name,
		Type:     domain.TaxType(m.TaxType),
		Rate:     m.Rate,
		IsActive: m.IsActive,
	}
}
