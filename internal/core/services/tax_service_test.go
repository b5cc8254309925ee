package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/core/services"
)

func TestTaxService_CheckDigit(t *testing.T) {
	svc := services.NewTaxService(new(MockTaxRateRepository))

	got, err := svc.CheckDigit(context.Background(), "800.197.268")

	require.NoError(t, err)
	assert.Equal(t, "800197268", got.TaxID)
	assert.Equal(t, 4, got.CheckDigit)
	assert.Equal(t, "800.197.268-4", got.Formatted)
}

func TestTaxService_CheckDigitTooLong(t *testing.T) {
	svc := services.NewTaxService(new(MockTaxRateRepository))

	_, err := svc.CheckDigit(context.Background(), "1234567890123456")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTaxService_ListTaxRates(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaxRateRepository)
	auth := new(MockAuthorizer)
	auth.On("AuthorizeUserAction", ctx, "u1", domain.PermRead).Return(nil)
	repo.On("ListActiveTaxRates", ctx).Return([]domain.TaxRate{
		{ID: "iva-19", Name: "IVA 19%", Type: domain.TaxIVA, Rate: decimal.NewFromInt(19), IsActive: true},
	}, nil).Once()
	svc := services.NewTaxService(repo, services.WithAuthorizer(auth))

	rates, err := svc.ListTaxRates(ctx, "u1")

	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, domain.TaxIVA, rates[0].Type)
	repo.AssertExpectations(t)
}

func TestTaxService_ListTaxRatesForbidden(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaxRateRepository)
	auth := new(MockAuthorizer)
	auth.On("AuthorizeUserAction", ctx, "u1", domain.PermRead).
		Return(&apperrors.AuthorizationError{UserID: "u1", Permission: "read"})
	svc := services.NewTaxService(repo, services.WithAuthorizer(auth))

	_, err := svc.ListTaxRates(ctx, "u1")

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	repo.AssertNotCalled(t, "ListActiveTaxRates", ctx)
}
