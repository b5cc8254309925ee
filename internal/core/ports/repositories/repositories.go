package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo    AccountRepositoryFacade
	ThirdPartyRepo ThirdPartyRepositoryFacade
	JournalRepo    JournalRepositoryFacade
	VoucherRepo    VoucherRepositoryFacade
	TaxRateRepo    TaxRateReader
	UserRepo       UserRepositoryFacade
	ReportingRepo  ReportingRepository
}
