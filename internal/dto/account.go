package dto

import (
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new PUC account.
type CreateAccountRequest struct {
	Code       string               `json:"code" binding:"required,puc_code"`
	Name       string               `json:"name" binding:"required"`
	Type       domain.AccountType   `json:"type" binding:"required,oneof=ACTIVO PASIVO PATRIMONIO INGRESO GASTO COSTO_VENTAS COSTO_PRODUCCION CUENTAS_ORDEN"`
	Nature     domain.AccountNature `json:"nature" binding:"required,oneof=DEBITO CREDITO"`
	Level      int                  `json:"level" binding:"required,min=1"`
	ParentCode *string              `json:"parentCode" binding:"omitempty,puc_code"` // Optional
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	Code          string               `json:"code"`
	Name          string               `json:"name"`
	Type          domain.AccountType   `json:"type"`
	Nature        domain.AccountNature `json:"nature"`
	Level         int                  `json:"level"`
	ParentCode    *string              `json:"parentCode,omitempty"`
	IsActive      bool                 `json:"isActive"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy string               `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		Code:          acc.Code,
		Name:          acc.Name,
		Type:          acc.Type,
		Nature:        acc.Nature,
		Level:         acc.Level,
		ParentCode:    acc.ParentCode,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Search string `form:"search"` // accent-insensitive match on code or name
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
