package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// UserReader defines read operations for user profiles
type UserReader interface {
	// FindProfileByID retrieves the profile of a user.
	FindProfileByID(ctx context.Context, userID string) (*domain.UserProfile, error)

	// ListProfiles returns every profile, newest first.
	ListProfiles(ctx context.Context) ([]domain.UserProfile, error)
}

// UserWriter defines write operations for user profiles
type UserWriter interface {
	// SaveProfile persists a new profile.
	SaveProfile(ctx context.Context, profile domain.UserProfile) error

	// UpdateRole changes the role of a user.
	UpdateRole(ctx context.Context, userID string, role domain.Role, updatedAt time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
