package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTrialBalance_SignsByNature(t *testing.T) {
	lines := []domain.LineRecord{
		record("4135", domain.Ingreso, domain.NatureCredito, day(2024, 5, 10), "0", "500000"),
		record("1105", domain.Activo, domain.NatureDebito, day(2024, 5, 10), "500000", "0"),
	}

	tb := ComputeTrialBalance(lines, domain.DateRange{})

	require.Len(t, tb.Accounts, 2)
	assert.Equal(t, "1105", tb.Accounts[0].Code)
	assert.Equal(t, "4135", tb.Accounts[1].Code)
	assertDecimal(t, "500000", tb.Accounts[0].Balance)
	assertDecimal(t, "500000", tb.Accounts[1].Balance)
	assertDecimal(t, "500000", tb.TotalDebit)
	assertDecimal(t, "500000", tb.TotalCredit)
	assert.True(t, tb.IsBalanced)
}

func TestComputeTrialBalance_FiltersStateAndDates(t *testing.T) {
	draft := record("1105", domain.Activo, domain.NatureDebito, day(2024, 5, 10), "999", "0")
	draft.EntryState = domain.EntryBorrador
	voided := record("1105", domain.Activo, domain.NatureDebito, day(2024, 5, 10), "888", "0")
	voided.EntryState = domain.EntryAnulado

	lines := []domain.LineRecord{
		record("1105", domain.Activo, domain.NatureDebito, day(2024, 5, 1), "100", "0"),
		record("1105", domain.Activo, domain.NatureDebito, day(2024, 5, 31), "50", "0"),
		record("1105", domain.Activo, domain.NatureDebito, day(2024, 6, 1), "7", "0"),
		record("2205", domain.Pasivo, domain.NatureCredito, day(2024, 5, 15), "0", "150"),
		draft,
		voided,
	}
	start := day(2024, 5, 1)
	end := time.Date(2024, 5, 31, 18, 30, 0, 0, time.UTC)

	tb := ComputeTrialBalance(lines, domain.DateRange{Start: &start, End: &end})

	require.Len(t, tb.Accounts, 2)
	assertDecimal(t, "150", tb.Accounts[0].Debit)
	assertDecimal(t, "150", tb.Accounts[1].Credit)
	assert.True(t, tb.IsBalanced)
}

func TestComputeTrialBalance_TotalsMatchRows(t *testing.T) {
	lines := []domain.LineRecord{
		record("1105", domain.Activo, domain.NatureDebito, day(2024, 1, 3), "120.50", "20"),
		record("1110", domain.Activo, domain.NatureDebito, day(2024, 1, 4), "0", "80"),
		record("2408", domain.Pasivo, domain.NatureCredito, day(2024, 1, 5), "0", "19.5"),
		record("5105", domain.Gasto, domain.NatureDebito, day(2024, 1, 6), "10", "0"),
	}

	tb := ComputeTrialBalance(lines, domain.DateRange{})

	sumDebit := dec("0")
	sumCredit := dec("0")
	for _, row := range tb.Accounts {
		sumDebit = sumDebit.Add(row.Debit)
		sumCredit = sumCredit.Add(row.Credit)
	}
	assert.True(t, sumDebit.Equal(tb.TotalDebit))
	assert.True(t, sumCredit.Equal(tb.TotalCredit))
	assertDecimal(t, "130.5", tb.TotalDebit)
	assertDecimal(t, "119.5", tb.TotalCredit)
	assert.False(t, tb.IsBalanced)
}

func TestComputeTrialBalance_ToleranceIsStrict(t *testing.T) {
	lines := []domain.LineRecord{
		record("1105", domain.Activo, domain.NatureDebito, day(2024, 1, 3), "100.01", "0"),
		record("4135", domain.Ingreso, domain.NatureCredito, day(2024, 1, 3), "0", "100"),
	}
	assert.False(t, ComputeTrialBalance(lines, domain.DateRange{}).IsBalanced)
}

func TestComputeTrialBalance_MissingAccountMetadata(t *testing.T) {
	orphan := domain.LineRecord{
		EntryDate:   day(2024, 2, 1),
		EntryState:  domain.EntryAprobado,
		AccountCode: "9999",
		Debit:       dec("40"),
		Credit:      dec("0"),
	}

	tb := ComputeTrialBalance([]domain.LineRecord{orphan}, domain.DateRange{})

	require.Len(t, tb.Accounts, 1)
	assert.Equal(t, "", tb.Accounts[0].Name)
	assert.Equal(t, domain.AccountType(""), tb.Accounts[0].Type)
	assertDecimal(t, "-40", tb.Accounts[0].Balance)
}

func TestComputeIncomeStatement(t *testing.T) {
	lines := []domain.LineRecord{
		record("4135", domain.Ingreso, domain.NatureCredito, day(2024, 3, 1), "0", "200000"),
		record("5105", domain.Gasto, domain.NatureDebito, day(2024, 3, 2), "50000", "0"),
		record("1105", domain.Activo, domain.NatureDebito, day(2024, 3, 2), "150000", "0"),
	}

	stmt := ComputeIncomeStatement(lines, domain.DateRange{})

	assertDecimal(t, "200000", stmt.Income)
	assertDecimal(t, "50000", stmt.Expenses)
	assertDecimal(t, "0", stmt.CostOfSales)
	assertDecimal(t, "200000", stmt.GrossProfit)
	assertDecimal(t, "150000", stmt.NetProfit)
	require.Len(t, stmt.IncomeDetails, 1)
	require.Len(t, stmt.ExpenseDetails, 1)
	assert.Equal(t, "4135", stmt.IncomeDetails[0].Code)
}

func TestComputeIncomeStatement_CostOfSalesAndOrdering(t *testing.T) {
	lines := []domain.LineRecord{
		record("4135", domain.Ingreso, domain.NatureCredito, day(2024, 3, 1), "0", "1000"),
		record("4175", domain.Ingreso, domain.NatureCredito, day(2024, 3, 1), "100", "0"),
		record("4210", domain.Ingreso, domain.NatureCredito, day(2024, 3, 1), "0", "3000"),
		record("6135", domain.CostoVentas, domain.NatureDebito, day(2024, 3, 1), "400", "0"),
		record("5105", domain.Gasto, domain.NatureDebito, day(2024, 3, 1), "200", "0"),
		record("5135", domain.Gasto, domain.NatureDebito, day(2024, 3, 1), "700", "50"),
	}

	stmt := ComputeIncomeStatement(lines, domain.DateRange{})

	assertDecimal(t, "3900", stmt.Income)
	assertDecimal(t, "400", stmt.CostOfSales)
	assertDecimal(t, "3500", stmt.GrossProfit)
	assertDecimal(t, "850", stmt.Expenses)
	assertDecimal(t, "2650", stmt.NetProfit)

	require.Len(t, stmt.IncomeDetails, 3)
	assert.Equal(t, []string{"4210", "4135", "4175"}, []string{stmt.IncomeDetails[0].Code, stmt.IncomeDetails[1].Code, stmt.IncomeDetails[2].Code})
	require.Len(t, stmt.ExpenseDetails, 2)
	assert.Equal(t, "5135", stmt.ExpenseDetails[0].Code)
	for _, d := range append(stmt.IncomeDetails, stmt.ExpenseDetails...) {
		assert.NotEqual(t, "6135", d.Code)
	}
}

func TestComputeIncomeStatement_InvariantUnderReordering(t *testing.T) {
	lines := []domain.LineRecord{
		record("4135", domain.Ingreso, domain.NatureCredito, day(2024, 3, 1), "0", "1000.25"),
		record("6135", domain.CostoVentas, domain.NatureDebito, day(2024, 3, 1), "300.10", "0"),
		record("5105", domain.Gasto, domain.NatureDebito, day(2024, 3, 1), "99.99", "0"),
		record("4135", domain.Ingreso, domain.NatureCredito, day(2024, 3, 5), "10", "0"),
	}
	reversed := make([]domain.LineRecord, len(lines))
	for i := range lines {
		reversed[len(lines)-1-i] = lines[i]
	}

	a := ComputeIncomeStatement(lines, domain.DateRange{})
	b := ComputeIncomeStatement(reversed, domain.DateRange{})

	assert.True(t, a.NetProfit.Equal(b.NetProfit))
	assert.True(t, a.NetProfit.Equal(a.Income.Sub(a.CostOfSales).Sub(a.Expenses)))
	assertDecimal(t, "590.16", a.NetProfit)
}

func TestComputeIncomeStatement_EmptyInput(t *testing.T) {
	stmt := ComputeIncomeStatement(nil, domain.DateRange{})
	assertDecimal(t, "0", stmt.NetProfit)
	assert.NotNil(t, stmt.IncomeDetails)
	assert.NotNil(t, stmt.ExpenseDetails)
}
