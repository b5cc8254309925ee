package dto

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// UpdateRoleRequest changes the role of a user.
type UpdateRoleRequest struct {
	Role domain.Role `json:"role" binding:"required,oneof=ADMIN CONTADOR AUXILIAR GERENTE VIEWER"`
}

// UserProfileResponse is the profile of the caller plus its effective permissions.
type UserProfileResponse struct {
	domain.UserProfile
	Permissions []domain.Permission `json:"permissions"`
}

// ListUsersResponse wraps the list of user profiles.
type ListUsersResponse struct {
	Users []domain.UserProfile `json:"users"`
}
