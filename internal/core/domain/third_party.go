package domain

// DocumentType is the identification document kind of a third party.
type DocumentType string

const (
	DocCC        DocumentType = "CC"
	DocNIT       DocumentType = "NIT"
	DocCE        DocumentType = "CE"
	DocPasaporte DocumentType = "PASAPORTE"
	DocTI        DocumentType = "TI"
)

// IsValidDocumentType reports whether d is a supported document type.
func IsValidDocumentType(d DocumentType) bool {
	switch d {
	case DocCC, DocNIT, DocCE, DocPasaporte, DocTI:
		return true
	}
	return false
}

// ThirdParty is a client, provider or employee (a "tercero").
type ThirdParty struct {
	ID             string       `json:"id"`
	DocumentType   DocumentType `json:"documentType"`
	DocumentNumber string       `json:"documentNumber"`
	CheckDigit     *int         `json:"dv,omitempty"`
	FullName       string       `json:"fullName"`
	Email          *string      `json:"email,omitempty"`
	Phone          *string      `json:"phone,omitempty"`
	Address        *string      `json:"address,omitempty"`
	City           *string      `json:"city,omitempty"`
	IsClient       bool         `json:"isClient"`
	IsProvider     bool         `json:"isProvider"`
	IsEmployee     bool         `json:"isEmployee"`
	AuditFields
}

// HasRole reports whether at least one role flag is set.
func (t ThirdParty) HasRole() bool {
	return t.IsClient || t.IsProvider || t.IsEmployee
}
