package repositories

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts
type AccountReader interface {
	// FindAccountByCode retrieves an account by its PUC code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// FindAccountsByCodes retrieves several accounts keyed by code. Missing codes are absent from the map.
	FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error)

	// ListAccounts returns every account ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for the chart of accounts
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
