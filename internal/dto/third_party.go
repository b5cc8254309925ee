package dto

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// CreateThirdPartyRequest defines the data needed to register a third party.
// For NIT documents the check digit is computed when omitted.
type CreateThirdPartyRequest struct {
	DocumentType   domain.DocumentType `json:"documentType" binding:"required,doc_type"`
	DocumentNumber string              `json:"documentNumber" binding:"required,max=20"`
	CheckDigit     *int                `json:"dv" binding:"omitempty,min=0,max=9"`
	FullName       string              `json:"fullName" binding:"required"`
	Email          *string             `json:"email" binding:"omitempty,email"`
	Phone          *string             `json:"phone"`
	Address        *string             `json:"address"`
	City           *string             `json:"city"`
	IsClient       bool                `json:"isClient"`
	IsProvider     bool                `json:"isProvider"`
	IsEmployee     bool                `json:"isEmployee"`
}

// ListThirdPartiesParams defines query parameters for listing third parties.
type ListThirdPartiesParams struct {
	Search string `form:"search"` // accent-insensitive match on name or document number
}

// ListThirdPartiesResponse wraps the list of third parties.
type ListThirdPartiesResponse struct {
	ThirdParties []domain.ThirdParty `json:"thirdParties"`
}

// CheckDigitResponse is returned by the tax-id utility endpoint.
type CheckDigitResponse struct {
	TaxID      string `json:"nit"`
	CheckDigit int    `json:"dv"`
	Formatted  string `json:"formatted"`
}
