package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}

func line(code, debit, credit string) domain.JournalLine {
	return domain.JournalLine{AccountCode: code, Debit: dec(debit), Credit: dec(credit)}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(code string, typ domain.AccountType, nature domain.AccountNature, date time.Time, debit, credit string) domain.LineRecord {
	return domain.LineRecord{
		EntryID:       "e-" + code,
		EntryDate:     date,
		EntryState:    domain.EntryAprobado,
		AccountCode:   code,
		AccountName:   "Cuenta " + code,
		AccountType:   typ,
		AccountNature: nature,
		Debit:         dec(debit),
		Credit:        dec(credit),
	}
}
