package services

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/accounting"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/utils"
)

type taxService struct {
	BaseService
	taxRepo portsrepo.TaxRateReader
}

// NewTaxService creates the tax configuration service.
func NewTaxService(taxRepo portsrepo.TaxRateReader, options ...ServiceOption) portssvc.TaxSvcFacade {
	svc := &taxService{taxRepo: taxRepo}
	for _, option := range options {
		option(&svc.BaseService)
	}
	return svc
}

var _ portssvc.TaxSvcFacade = (*taxService)(nil)

func (s *taxService) ListTaxRates(ctx context.Context, userID string) ([]domain.TaxRate, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermRead); err != nil {
		return nil, err
	}
	rates, err := s.taxRepo.ListActiveTaxRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tax rates")
		return nil, err
	}
	if rates == nil {
		return []domain.TaxRate{}, nil
	}
	return rates, nil
}

// CheckDigit computes the DV of taxID. The function is pure and needs no permission.
func (s *taxService) CheckDigit(ctx context.Context, taxID string) (*dto.CheckDigitResponse, error) {
	digits := accounting.CleanTaxID(taxID)
	dv, err := accounting.ComputeCheckDigit(digits)
	if err != nil {
		return nil, err
	}
	return &dto.CheckDigitResponse{
		TaxID:      digits,
		CheckDigit: dv,
		Formatted:  utils.FormatTaxID(digits, dv),
	}, nil
}
