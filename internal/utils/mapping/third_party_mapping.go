package mapping

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/models"
)

// ToModelThirdParty converts a domain ThirdParty to a model ThirdParty
func ToModelThirdParty(d domain.ThirdParty) models.ThirdParty {
	var dv *int16
	if d.CheckDigit != nil {
		v := int16(*d.CheckDigit)
		dv = &v
	}
	return models.ThirdParty{
		ID:             d.ID,
		DocumentType:   string(d.DocumentType),
		DocumentNumber: d.DocumentNumber,
		CheckDigit:     dv,
		FullName:       d.FullName,
		Email:          d.Email,
		Phone:          d.Phone,
		Address:        d.Address,
		City:           d.City,
		IsClient:       d.IsClient,
		IsProvider:     d.IsProvider,
		IsEmployee:     d.IsEmployee,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainThirdParty converts a model ThirdParty to a domain ThirdParty
func ToDomainThirdParty(m models.ThirdParty) domain.ThirdParty {
	var dv *int
	if m.CheckDigit != nil {
		v := int(*m.CheckDigit)
		dv = &v
	}
	return domain.ThirdParty{
		ID:             m.ID,
		DocumentType:   domain.DocumentType(m.DocumentType),
		DocumentNumber: m.DocumentNumber,
		CheckDigit:     dv,
		FullName:       m.FullName,
		Email:          m.Email,
		Phone:          m.Phone,
		Address:        m.Address,
		City:           m.City,
		IsClient:       m.IsClient,
		IsProvider:     m.IsProvider,
		IsEmployee:     m.IsEmployee,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
