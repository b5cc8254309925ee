package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/utils"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// ServiceOption is a functional option shared by the services embedding BaseService
type ServiceOption func(*BaseService)

// WithAuthorizer sets the authorizer consulted before every operation
func WithAuthorizer(authorizer portssvc.AuthorizerSvc) ServiceOption {
	return func(s *BaseService) {
		s.Authorizer = authorizer
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...ServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
	}
	for _, option := range options {
		option(&svc.BaseService)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermCreate); err != nil {
		return nil, err
	}

	if !domain.IsValidAccountType(req.Type) {
		return nil, apperrors.NewValidationError("invalid account type %q", req.Type)
	}
	if !domain.IsValidNature(req.Nature) {
		return nil, apperrors.NewValidationError("invalid account nature %q", req.Nature)
	}
	if req.Level < 1 {
		return nil, apperrors.NewValidationError("account level must be at least 1")
	}

	if req.ParentCode != nil {
		parentCode := *req.ParentCode
		if parentCode == req.Code || !strings.HasPrefix(req.Code, parentCode) {
			return nil, apperrors.NewValidationError("parent code %s must be a prefix of %s", parentCode, req.Code)
		}
		if _, err := s.accountRepo.FindAccountByCode(ctx, parentCode); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError("parent account %s does not exist", parentCode)
			}
			s.LogError(ctx, err, "Failed to find parent account",
				slog.String("account_code", parentCode))
			return nil, err
		}
	}

	now := s.Now()
	account := domain.Account{
		Code:       req.Code,
		Name:       strings.TrimSpace(req.Name),
		Type:       req.Type,
		Nature:     req.Nature,
		Level:      req.Level,
		ParentCode: req.ParentCode,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_code", account.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_code", account.Code))
	return &account, nil
}

func (s *accountService) GetAccountByCode(ctx context.Context, code string, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermRead); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by code",
				slog.String("account_code", code))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams, userID string) ([]domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermRead); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}

	filtered := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		if utils.MatchesFolded(params.Search, acc.Code, acc.Name) {
			filtered = append(filtered, acc)
		}
	}
	return filtered, nil
}
