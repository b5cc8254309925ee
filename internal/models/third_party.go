package models

// ThirdParty is a row of third_parties.
type ThirdParty struct {
	ID             string  `db:"id"`
	DocumentType   string  `db:"document_type"`
	DocumentNumber string  `db:"document_number"`
	CheckDigit     *int16  `db:"check_digit"` // Only set for NIT
	FullName       string  `db:"full_name"`
	Email          *string `db:"email"`
	Phone          *string `db:"phone"`
	Address        *string `db:"address"`
	City           *string `db:"city"`
	IsClient       bool    `db:"is_client"`
	IsProvider     bool    `db:"is_provider"`
	IsEmployee     bool    `db:"is_employee"`
	AuditFields
}
