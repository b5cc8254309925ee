package services

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// GetAccountByCode retrieves a specific account by its PUC code.
	GetAccountByCode(ctx context.Context, code string, userID string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts ordered by code, optionally filtered.
	ListAccounts(ctx context.Context, params dto.ListAccountsParams, userID string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for the chart of accounts
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}

// ThirdPartySvcFacade defines operations on customers, providers and employees.
type ThirdPartySvcFacade interface {
	GetThirdPartyByID(ctx context.Context, id string, userID string) (*domain.ThirdParty, error)
	ListThirdParties(ctx context.Context, params dto.ListThirdPartiesParams, userID string) ([]domain.ThirdParty, error)
	CreateThirdParty(ctx context.Context, req dto.CreateThirdPartyRequest, userID string) (*domain.ThirdParty, error)
}
