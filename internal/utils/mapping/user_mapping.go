package mapping

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/models"
)

// ToModelUserProfile converts a domain UserProfile to a model UserProfile
func ToModelUserProfile(d domain.UserProfile) models.UserProfile {
	return models.UserProfile{
		UserID:    d.UserID,
		FullName:  d.FullName,
		Role:      string(d.Role),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDomainUserProfile converts a model UserProfile to a domain UserProfile
func ToDomainUserProfile(m models.UserProfile) domain.UserProfile {
	return domain.UserProfile{
		UserID:    m.UserID,
		FullName:  m.FullName,
		Role:      domain.Role(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
