package services

import (
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// cache may be nil, in which case reports are always computed.
func NewServiceContainer(repos portsrepo.RepositoryProvider, policy Policy, cache portssvc.ReportCache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The user service is the authorizer every other service depends on
	container.User = NewUserService(repos.UserRepo, policy)
	authorizer := container.User.(portssvc.AuthorizerSvc)

	container.Account = NewAccountService(repos.AccountRepo, WithAuthorizer(authorizer))
	container.ThirdParty = NewThirdPartyService(repos.ThirdPartyRepo, WithAuthorizer(authorizer))

	journalOpts := []JournalServiceOption{
		WithJournalAuthorizer(authorizer),
		WithThirdPartyReader(repos.ThirdPartyRepo),
	}
	reportingOpts := []ReportingServiceOption{WithReportingAuthorizer(authorizer)}
	if cache != nil {
		journalOpts = append(journalOpts, WithJournalCache(cache))
		reportingOpts = append(reportingOpts, WithReportingCache(cache))
	}
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo, journalOpts...)

	container.Voucher = NewVoucherService(repos.VoucherRepo, repos.AccountRepo, repos.ThirdPartyRepo, WithAuthorizer(authorizer))
	container.Tax = NewTaxService(repos.TaxRateRepo, WithAuthorizer(authorizer))
	container.Reporting = NewReportingService(repos.ReportingRepo, reportingOpts...)
	container.Anomaly = NewAnomalyService(repos.ReportingRepo, WithAuthorizer(authorizer))

	return container
}
