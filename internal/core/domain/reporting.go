package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow is one account in a trial balance.
type TrialBalanceRow struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Type    AccountType     `json:"type"`
	Nature  AccountNature   `json:"nature"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Balance decimal.Decimal `json:"balance"`
}

// TrialBalance lists per-account totals and the global check.
type TrialBalance struct {
	Accounts    []TrialBalanceRow `json:"accounts"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	IsBalanced  bool              `json:"isBalanced"`
}

// AccountAmount is an account with its net amount in a report.
type AccountAmount struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// IncomeStatement (estado de resultados) for a period.
type IncomeStatement struct {
	Income         decimal.Decimal `json:"income"`
	IncomeDetails  []AccountAmount `json:"incomeDetails"`
	CostOfSales    decimal.Decimal `json:"costOfSales"`
	GrossProfit    decimal.Decimal `json:"grossProfit"`
	Expenses       decimal.Decimal `json:"expenses"`
	ExpenseDetails []AccountAmount `json:"expenseDetails"`
	NetProfit      decimal.Decimal `json:"netProfit"`
}

// MonthlyFlow is income and expense for one YYYY-MM period.
type MonthlyFlow struct {
	Period  string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// FinancialMetrics are the dashboard figures.
type FinancialMetrics struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
	History  []MonthlyFlow   `json:"history"`
}
