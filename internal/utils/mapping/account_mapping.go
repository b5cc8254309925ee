package mapping

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		Code:        d.Code,
		Name:        d.Name,
		Type:        string(d.Type),
		Nature:      string(d.Nature),
		Level:       d.Level,
		ParentCode:  d.ParentCode,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		Code:        m.Code,
		Name:        m.Name,
		Type:        domain.AccountType(m.Type),
		Nature:      domain.AccountNature(m.Nature),
		Level:       m.Level,
		ParentCode:  m.ParentCode,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
