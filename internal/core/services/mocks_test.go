package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
)

// --- Repositories ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

type MockThirdPartyRepository struct {
	mock.Mock
}

var _ portsrepo.ThirdPartyRepositoryFacade = (*MockThirdPartyRepository)(nil)

func (m *MockThirdPartyRepository) FindThirdPartyByID(ctx context.Context, id string) (*domain.ThirdParty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ThirdParty), args.Error(1)
}

func (m *MockThirdPartyRepository) ListThirdParties(ctx context.Context) ([]domain.ThirdParty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ThirdParty), args.Error(1)
}

func (m *MockThirdPartyRepository) SaveThirdParty(ctx context.Context, party domain.ThirdParty) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var entries []domain.JournalEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.JournalEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

func (m *MockJournalRepository) InsertEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) UpdateEntryState(ctx context.Context, entryID string, expectedVersion int, state domain.EntryState, updatedBy string, updatedAt time.Time) (int, error) {
	args := m.Called(ctx, entryID, expectedVersion, state, updatedBy, updatedAt)
	return args.Int(0), args.Error(1)
}

type MockVoucherRepository struct {
	mock.Mock
}

var _ portsrepo.VoucherRepositoryFacade = (*MockVoucherRepository)(nil)

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, id string) (*domain.Voucher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchers(ctx context.Context, voucherType *domain.VoucherType) ([]domain.Voucher, error) {
	args := m.Called(ctx, voucherType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

type MockTaxRateRepository struct {
	mock.Mock
}

func (m *MockTaxRateRepository) ListActiveTaxRates(ctx context.Context) ([]domain.TaxRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxRate), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindProfileByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserRepository) ListProfiles(ctx context.Context) ([]domain.UserProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserProfile), args.Error(1)
}

func (m *MockUserRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, userID string, role domain.Role, updatedAt time.Time) error {
	args := m.Called(ctx, userID, role, updatedAt)
	return args.Error(0)
}

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) QueryLines(ctx context.Context, filter domain.LineFilter) ([]domain.LineRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineRecord), args.Error(1)
}

func (m *MockReportingRepository) ListEntrySnapshots(ctx context.Context, state domain.EntryState) ([]domain.EntrySnapshot, error) {
	args := m.Called(ctx, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntrySnapshot), args.Error(1)
}

// --- Collaborators ---

type MockAuthorizer struct {
	mock.Mock
}

var _ portssvc.AuthorizerSvc = (*MockAuthorizer)(nil)

func (m *MockAuthorizer) AuthorizeUserAction(ctx context.Context, userID string, perm domain.Permission) error {
	args := m.Called(ctx, userID, perm)
	return args.Error(0)
}

type MockReportCache struct {
	mock.Mock
}

var _ portssvc.ReportCache = (*MockReportCache)(nil)

func (m *MockReportCache) BuildKey(ctx context.Context, parts ...string) (string, error) {
	args := m.Called(ctx, parts)
	return args.String(0), args.Error(1)
}

// FetchJSON only records the call; tests populate dest through Run when needed.
func (m *MockReportCache) FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error {
	args := m.Called(ctx, key, dest, loader)
	return args.Error(0)
}

func (m *MockReportCache) Bump(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
