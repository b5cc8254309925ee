package repositories

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// ThirdPartyReader defines read operations for third parties
type ThirdPartyReader interface {
	// FindThirdPartyByID retrieves a third party by ID.
	FindThirdPartyByID(ctx context.Context, id string) (*domain.ThirdParty, error)

	// ListThirdParties returns every third party ordered by name.
	ListThirdParties(ctx context.Context) ([]domain.ThirdParty, error)
}

// ThirdPartyWriter defines write operations for third parties
type ThirdPartyWriter interface {
	// SaveThirdParty persists a new third party.
	SaveThirdParty(ctx context.Context, party domain.ThirdParty) error
}

// ThirdPartyRepositoryFacade combines all third-party repository interfaces
type ThirdPartyRepositoryFacade interface {
	ThirdPartyReader
	ThirdPartyWriter
}
