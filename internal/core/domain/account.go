package domain

// AccountType is the PUC classification of an account.
type AccountType string

const (
	Activo          AccountType = "ACTIVO"
	Pasivo          AccountType = "PASIVO"
	Patrimonio      AccountType = "PATRIMONIO"
	Ingreso         AccountType = "INGRESO"
	Gasto           AccountType = "GASTO"
	CostoVentas     AccountType = "COSTO_VENTAS"
	CostoProduccion AccountType = "COSTO_PRODUCCION"
	CuentasOrden    AccountType = "CUENTAS_ORDEN"
)

// AccountNature is the side on which an account's balance increases.
type AccountNature string

const (
	NatureDebito  AccountNature = "DEBITO"
	NatureCredito AccountNature = "CREDITO"
)

// Account is a PUC (Plan Único de Cuentas) account. Code is the primary key.
type Account struct {
	Code       string        `json:"code"`
	Name       string        `json:"name"`
	Type       AccountType   `json:"type"`
	Nature     AccountNature `json:"nature"`
	Level      int           `json:"level"`
	ParentCode *string       `json:"parentCode,omitempty"` // weak reference to another Account
	IsActive   bool          `json:"isActive"`
	AuditFields
}

// IsValidAccountType reports whether t is one of the PUC classes.
func IsValidAccountType(t AccountType) bool {
	switch t {
	case Activo, Pasivo, Patrimonio, Ingreso, Gasto, CostoVentas, CostoProduccion, CuentasOrden:
		return true
	}
	return false
}

// IsValidNature reports whether n is DEBITO or CREDITO.
func IsValidNature(n AccountNature) bool {
	return n == NatureDebito || n == NatureCredito
}
