package domain

import "github.com/shopspring/decimal"

// TaxType groups tax rates.
type TaxType string

const (
	TaxIVA        TaxType = "IVA"
	TaxRetefuente TaxType = "RETEFUENTE"
	TaxReteICA    TaxType = "RETEICA"
)

// TaxRate is a configured tax percentage.
type TaxRate struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     TaxType         `json:"type"`
	Rate     decimal.Decimal `json:"rate"`
	IsActive bool            `json:"isActive"`
}
