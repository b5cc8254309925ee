package services

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// UserReaderSvc defines read operations for user profiles
type UserReaderSvc interface {
	// GetOrCreateProfile returns the caller's profile, creating a VIEWER profile on first access.
	GetOrCreateProfile(ctx context.Context, userID string, fullName string) (*domain.UserProfile, error)

	// ListUsers retrieves every profile.
	ListUsers(ctx context.Context, requestingUserID string) ([]domain.UserProfile, error)

	// PermissionsFor returns the permission set a role grants.
	PermissionsFor(role domain.Role) []domain.Permission
}

// UserWriterSvc defines write operations for user profiles
type UserWriterSvc interface {
	// UpdateUserRole changes the role of targetUserID. Only roles allowed by the policy may do this.
	UpdateUserRole(ctx context.Context, requestingUserID, targetUserID string, role domain.Role) (*domain.UserProfile, error)
}

// AuthorizerSvc decides whether a user may perform an action.
type AuthorizerSvc interface {
	// AuthorizeUserAction returns an *apperrors.AuthorizationError when the user's role lacks perm.
	AuthorizeUserAction(ctx context.Context, userID string, perm domain.Permission) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	AuthorizerSvc
}
