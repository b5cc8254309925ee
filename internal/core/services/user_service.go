package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
)

// permChangeRole names the privilege checked for role changes in authorization errors.
const permChangeRole = "change_role"

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	policy   Policy
}

// NewUserService creates a new user service. The service is also the
// authorizer used by every other service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, policy Policy) portssvc.UserSvcFacade {
	return &userService{
		userRepo: userRepo,
		policy:   policy,
	}
}

// Ensure userService implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// roleOf returns the role of userID. Users without a profile are viewers.
func (s *userService) roleOf(ctx context.Context, userID string) (domain.Role, error) {
	profile, err := s.userRepo.FindProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.RoleViewer, nil
		}
		return "", err
	}
	return profile.Role, nil
}

func (s *userService) AuthorizeUserAction(ctx context.Context, userID string, perm domain.Permission) error {
	role, err := s.roleOf(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve user role",
			slog.String("user_id", userID))
		return err
	}
	if !s.policy.HasPermission(role, perm) {
		s.LogDebug(ctx, "Permission denied",
			slog.String("user_id", userID),
			slog.String("role", string(role)),
			slog.String("permission", string(perm)))
		return &apperrors.AuthorizationError{UserID: userID, Permission: string(perm)}
	}
	return nil
}

func (s *userService) GetOrCreateProfile(ctx context.Context, userID string, fullName string) (*domain.UserProfile, error) {
	profile, err := s.userRepo.FindProfileByID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to find user profile",
			slog.String("user_id", userID))
		return nil, err
	}

	if fullName == "" {
		fullName = userID
	}
	now := s.Now()
	newProfile := domain.UserProfile{
		UserID:    userID,
		FullName:  fullName,
		Role:      domain.RoleViewer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userRepo.SaveProfile(ctx, newProfile); err != nil {
		// A concurrent first request may have created it
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.userRepo.FindProfileByID(ctx, userID)
		}
		s.LogError(ctx, err, "Failed to create user profile",
			slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "User profile created",
		slog.String("user_id", userID),
		slog.String("role", string(newProfile.Role)))
	return &newProfile, nil
}

func (s *userService) ListUsers(ctx context.Context, requestingUserID string) ([]domain.UserProfile, error) {
	role, err := s.roleOf(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanChangeRoles(role) {
		return nil, &apperrors.AuthorizationError{UserID: requestingUserID, Permission: permChangeRole}
	}

	profiles, err := s.userRepo.ListProfiles(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list user profiles")
		return nil, err
	}
	if profiles == nil {
		return []domain.UserProfile{}, nil
	}
	return profiles, nil
}

func (s *userService) PermissionsFor(role domain.Role) []domain.Permission {
	return s.policy.Permissions(role)
}

func (s *userService) UpdateUserRole(ctx context.Context, requestingUserID, targetUserID string, role domain.Role) (*domain.UserProfile, error) {
	requesterRole, err := s.roleOf(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	// Checked before any mutating call
	if !s.policy.CanChangeRoles(requesterRole) {
		s.LogInfo(ctx, "Role change denied",
			slog.String("user_id", requestingUserID),
			slog.String("target_user_id", targetUserID))
		return nil, &apperrors.AuthorizationError{UserID: requestingUserID, Permission: permChangeRole}
	}
	if !domain.IsValidRole(role) {
		return nil, apperrors.NewValidationError("invalid role %q", role)
	}

	target, err := s.userRepo.FindProfileByID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user", targetUserID)
		}
		return nil, err
	}

	now := s.Now()
	if err := s.userRepo.UpdateRole(ctx, targetUserID, role, now); err != nil {
		s.LogError(ctx, err, "Failed to update user role",
			slog.String("target_user_id", targetUserID))
		return nil, err
	}

	s.LogInfo(ctx, "User role updated",
		slog.String("user_id", requestingUserID),
		slog.String("target_user_id", targetUserID),
		slog.String("role", string(role)))
	target.Role = role
	target.UpdatedAt = now
	return target, nil
}
