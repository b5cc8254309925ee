package accounting

import (
	"sort"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// accountTotals accumulates one account's movements.
type accountTotals struct {
	code   string
	name   string
	typ    domain.AccountType
	nature domain.AccountNature
	debit  decimal.Decimal
	credit decimal.Decimal
}

// FilterApproved keeps lines of approved entries dated inside r.
func FilterApproved(lines []domain.LineRecord, r domain.DateRange) []domain.LineRecord {
	out := make([]domain.LineRecord, 0, len(lines))
	for _, l := range lines {
		if l.EntryState != domain.EntryAprobado {
			continue
		}
		if !r.Contains(l.EntryDate) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// groupByAccount sums debit and credit per account code. Account metadata is
// taken from the first line seen for the code; missing metadata stays empty.
func groupByAccount(lines []domain.LineRecord) map[string]*accountTotals {
	groups := make(map[string]*accountTotals)
	for _, l := range lines {
		acc, ok := groups[l.AccountCode]
		if !ok {
			acc = &accountTotals{
				code:   l.AccountCode,
				name:   l.AccountName,
				typ:    l.AccountType,
				nature: l.AccountNature,
				debit:  decimal.Zero,
				credit: decimal.Zero,
			}
			groups[l.AccountCode] = acc
		}
		acc.debit = acc.debit.Add(l.Debit)
		acc.credit = acc.credit.Add(l.Credit)
	}
	return groups
}

// sortedCodes returns the map keys in ascending lexicographic order.
func sortedCodes(groups map[string]*accountTotals) []string {
	codes := make([]string, 0, len(groups))
	for code := range groups {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ComputeTrialBalance groups approved lines in r by account, signs each
// balance by the account nature and checks the global double-entry law.
func ComputeTrialBalance(lines []domain.LineRecord, r domain.DateRange) domain.TrialBalance {
	groups := groupByAccount(FilterApproved(lines, r))

	report := domain.TrialBalance{
		Accounts:    make([]domain.TrialBalanceRow, 0, len(groups)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, code := range sortedCodes(groups) {
		acc := groups[code]
		report.Accounts = append(report.Accounts, domain.TrialBalanceRow{
			Code:    acc.code,
			Name:    acc.name,
			Type:    acc.typ,
			Nature:  acc.nature,
			Debit:   acc.debit,
			Credit:  acc.credit,
			Balance: SignedBalance(acc.nature, acc.debit, acc.credit),
		})
		report.TotalDebit = report.TotalDebit.Add(acc.debit)
		report.TotalCredit = report.TotalCredit.Add(acc.credit)
	}
	report.IsBalanced = report.TotalDebit.Sub(report.TotalCredit).Abs().LessThan(BalanceTolerance)
	return report
}

// ComputeIncomeStatement classifies approved lines in r by account type.
// INGRESO adds credit - debit to income; GASTO and COSTO_VENTAS add
// debit - credit to expenses and cost of sales. Cost of sales has no details.
func ComputeIncomeStatement(lines []domain.LineRecord, r domain.DateRange) domain.IncomeStatement {
	groups := groupByAccount(FilterApproved(lines, r))

	stmt := domain.IncomeStatement{
		Income:         decimal.Zero,
		IncomeDetails:  []domain.AccountAmount{},
		CostOfSales:    decimal.Zero,
		Expenses:       decimal.Zero,
		ExpenseDetails: []domain.AccountAmount{},
	}
	for _, code := range sortedCodes(groups) {
		acc := groups[code]
		switch acc.typ {
		case domain.Ingreso:
			amount := acc.credit.Sub(acc.debit)
			stmt.Income = stmt.Income.Add(amount)
			stmt.IncomeDetails = append(stmt.IncomeDetails, domain.AccountAmount{Code: code, Name: acc.name, Amount: amount})
		case domain.Gasto:
			amount := acc.debit.Sub(acc.credit)
			stmt.Expenses = stmt.Expenses.Add(amount)
			stmt.ExpenseDetails = append(stmt.ExpenseDetails, domain.AccountAmount{Code: code, Name: acc.name, Amount: amount})
		case domain.CostoVentas:
			stmt.CostOfSales = stmt.CostOfSales.Add(acc.debit.Sub(acc.credit))
		}
	}
	sortByAmountDesc(stmt.IncomeDetails)
	sortByAmountDesc(stmt.ExpenseDetails)

	stmt.GrossProfit = stmt.Income.Sub(stmt.CostOfSales)
	stmt.NetProfit = stmt.GrossProfit.Sub(stmt.Expenses)
	return stmt
}

// sortByAmountDesc orders details by amount, ties broken by code.
func sortByAmountDesc(details []domain.AccountAmount) {
	sort.SliceStable(details, func(i, j int) bool {
		if !details[i].Amount.Equal(details[j].Amount) {
			return details[i].Amount.GreaterThan(details[j].Amount)
		}
		return details[i].Code < details[j].Code
	})
}
