package handlers_test

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/handlers"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByCode(ctx context.Context, code string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, code, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) GetJournalEntryByID(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams, userID string) (*dto.ListJournalEntriesResponse, error) {
	args := m.Called(ctx, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalEntriesResponse), args.Error(1)
}
func (m *MockJournalService) ApproveEntry(ctx context.Context, entryID string, version int, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, version, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) VoidEntry(ctx context.Context, entryID string, version int, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, version, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, r domain.DateRange, userID string) (*domain.TrialBalance, error) {
	args := m.Called(ctx, r, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}
func (m *MockReportingService) IncomeStatement(ctx context.Context, r domain.DateRange, userID string) (*domain.IncomeStatement, error) {
	args := m.Called(ctx, r, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}
func (m *MockReportingService) FinancialMetrics(ctx context.Context, userID string) (*domain.FinancialMetrics, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialMetrics), args.Error(1)
}
func (m *MockReportingService) TrialBalancePDF(ctx context.Context, r domain.DateRange, userID string) ([]byte, error) {
	args := m.Called(ctx, r, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockReportingService) IncomeStatementPDF(ctx context.Context, r domain.DateRange, userID string) ([]byte, error) {
	args := m.Called(ctx, r, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock TaxService ---
type MockTaxService struct {
	mock.Mock
}

func (m *MockTaxService) ListTaxRates(ctx context.Context, userID string) ([]domain.TaxRate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxRate), args.Error(1)
}
func (m *MockTaxService) CheckDigit(ctx context.Context, taxID string) (*dto.CheckDigitResponse, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CheckDigitResponse), args.Error(1)
}

var _ portssvc.TaxSvcFacade = (*MockTaxService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetOrCreateProfile(ctx context.Context, userID string, fullName string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, requestingUserID string) ([]domain.UserProfile, error) {
	args := m.Called(ctx, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserProfile), args.Error(1)
}
func (m *MockUserService) PermissionsFor(role domain.Role) []domain.Permission {
	args := m.Called(role)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Permission)
}
func (m *MockUserService) UpdateUserRole(ctx context.Context, requestingUserID, targetUserID string, role domain.Role) (*domain.UserProfile, error) {
	args := m.Called(ctx, requestingUserID, targetUserID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}
func (m *MockUserService) AuthorizeUserAction(ctx context.Context, userID string, perm domain.Permission) error {
	args := m.Called(ctx, userID, perm)
	return args.Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock AnomalyService ---
type MockAnomalyService struct {
	mock.Mock
}

func (m *MockAnomalyService) DetectAnomalies(ctx context.Context, userID string) ([]domain.Finding, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Finding), args.Error(1)
}
func (m *MockAnomalyService) Scan(ctx context.Context) ([]domain.Finding, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Finding), args.Error(1)
}

var _ portssvc.AnomalySvc = (*MockAnomalyService)(nil)

// --- Mock ScanEnqueuer ---
type MockScanEnqueuer struct {
	mock.Mock
}

func (m *MockScanEnqueuer) EnqueueAnomalyScan(ctx context.Context, requestedBy string) error {
	args := m.Called(ctx, requestedBy)
	return args.Error(0)
}

var _ handlers.ScanEnqueuer = (*MockScanEnqueuer)(nil)
