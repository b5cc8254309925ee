package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/accounting"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/utils"
	"github.com/google/uuid"
)

type thirdPartyService struct {
	BaseService
	repo portsrepo.ThirdPartyRepositoryFacade
}

// NewThirdPartyService creates a new third-party service.
func NewThirdPartyService(repo portsrepo.ThirdPartyRepositoryFacade, options ...ServiceOption) portssvc.ThirdPartySvcFacade {
	svc := &thirdPartyService{repo: repo}
	for _, option := range options {
		option(&svc.BaseService)
	}
	return svc
}

var _ portssvc.ThirdPartySvcFacade = (*thirdPartyService)(nil)

func (s *thirdPartyService) CreateThirdParty(ctx context.Context, req dto.CreateThirdPartyRequest, userID string) (*domain.ThirdParty, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermCreate); err != nil {
		return nil, err
	}
	if !domain.IsValidDocumentType(req.DocumentType) {
		return nil, apperrors.NewValidationError("invalid document type %q", req.DocumentType)
	}

	now := s.Now()
	party := domain.ThirdParty{
		ID:             uuid.NewString(),
		DocumentType:   req.DocumentType,
		DocumentNumber: strings.TrimSpace(req.DocumentNumber),
		CheckDigit:     req.CheckDigit,
		FullName:       strings.TrimSpace(req.FullName),
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		City:           req.City,
		IsClient:       req.IsClient,
		IsProvider:     req.IsProvider,
		IsEmployee:     req.IsEmployee,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if !party.HasRole() {
		return nil, apperrors.NewValidationError("third party must be a client, provider or employee")
	}

	if party.DocumentType == domain.DocNIT {
		if err := applyCheckDigit(&party); err != nil {
			return nil, err
		}
	}

	if err := s.repo.SaveThirdParty(ctx, party); err != nil {
		s.LogError(ctx, err, "Failed to save third party",
			slog.String("third_party_id", party.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Third party created",
		slog.String("third_party_id", party.ID),
		slog.String("document_type", string(party.DocumentType)))
	return &party, nil
}

// applyCheckDigit normalises a NIT to its digits, then computes the DV when
// missing or verifies it when supplied.
func applyCheckDigit(party *domain.ThirdParty) error {
	digits := accounting.CleanTaxID(party.DocumentNumber)
	if digits == "" {
		return apperrors.NewValidationError("NIT must contain digits")
	}
	party.DocumentNumber = digits

	if party.CheckDigit == nil {
		dv, err := accounting.ComputeCheckDigit(digits)
		if err != nil {
			return err
		}
		party.CheckDigit = &dv
		return nil
	}

	ok, err := accounting.VerifyCheckDigit(digits, *party.CheckDigit)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewValidationError("check digit %d does not match NIT %s", *party.CheckDigit, digits)
	}
	return nil
}

func (s *thirdPartyService) GetThirdPartyByID(ctx context.Context, id string, userID string) (*domain.ThirdParty, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermRead); err != nil {
		return nil, err
	}
	party, err := s.repo.FindThirdPartyByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find third party",
				slog.String("third_party_id", id))
		}
		return nil, err
	}
	return party, nil
}

func (s *thirdPartyService) ListThirdParties(ctx context.Context, params dto.ListThirdPartiesParams, userID string) ([]domain.ThirdParty, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermRead); err != nil {
		return nil, err
	}
	parties, err := s.repo.ListThirdParties(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list third parties")
		return nil, err
	}

	filtered := make([]domain.ThirdParty, 0, len(parties))
	for _, p := range parties {
		if utils.MatchesFolded(params.Search, p.FullName, p.DocumentNumber) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}
