package domain

import "time"

// Role is a user's role inside the ledger.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleContador Role = "CONTADOR"
	RoleAuxiliar Role = "AUXILIAR"
	RoleGerente  Role = "GERENTE"
	RoleViewer   Role = "VIEWER"
)

// IsValidRole reports whether r is a known role.
func IsValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleContador, RoleAuxiliar, RoleGerente, RoleViewer:
		return true
	}
	return false
}

// Permission is a coarse capability checked before an operation.
type Permission string

const (
	PermRead    Permission = "read"
	PermCreate  Permission = "create"
	PermUpdate  Permission = "update"
	PermApprove Permission = "approve"
	PermReports Permission = "reports"
	PermAll     Permission = "*"
)

// UserProfile is the application profile of an authenticated user.
type UserProfile struct {
	UserID    string    `json:"userID"` // subject of the identity provider token
	FullName  string    `json:"fullName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
