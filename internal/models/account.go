package models

// Account is a row of puc_accounts. Code is the primary key.
type Account struct {
	Code       string  `db:"code"`
	Name       string  `db:"name"`
	Type       string  `db:"account_type"`
	Nature     string  `db:"nature"`
	Level      int     `db:"level"`
	ParentCode *string `db:"parent_code"` // Nullable
	IsActive   bool    `db:"is_active"`
	AuditFields
}
