package pgsql

import (
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	voucherRepo := newPgxVoucherRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:    newPgxAccountRepository(dbPool),
		ThirdPartyRepo: newPgxThirdPartyRepository(dbPool),
		JournalRepo:    newPgxJournalRepository(dbPool),
		VoucherRepo:    voucherRepo,
		TaxRateRepo:    voucherRepo,
		UserRepo:       newPgxUserRepository(dbPool),
		ReportingRepo:  newPgxReportingRepository(dbPool),
	}
}
