package accounting

import (
	"sort"
	"strings"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	incomeClassPrefix  = "4" // PUC class 4: ingresos
	expenseClassPrefix = "5" // PUC class 5: gastos
	periodLayout       = "2006-01"
)

// ComputeFinancialMetrics sums PUC class 4 credits as income and class 5
// debits as expenses, overall and per calendar month of the entry date.
func ComputeFinancialMetrics(lines []domain.LineRecord) domain.FinancialMetrics {
	metrics := domain.FinancialMetrics{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
		History:  []domain.MonthlyFlow{},
	}
	flows := make(map[string]*domain.MonthlyFlow)

	for _, l := range lines {
		period := l.EntryDate.UTC().Format(periodLayout)
		flow, ok := flows[period]
		if !ok {
			flow = &domain.MonthlyFlow{Period: period, Income: decimal.Zero, Expense: decimal.Zero}
			flows[period] = flow
		}
		if strings.HasPrefix(l.AccountCode, incomeClassPrefix) {
			metrics.Income = metrics.Income.Add(l.Credit)
			flow.Income = flow.Income.Add(l.Credit)
		}
		if strings.HasPrefix(l.AccountCode, expenseClassPrefix) {
			metrics.Expenses = metrics.Expenses.Add(l.Debit)
			flow.Expense = flow.Expense.Add(l.Debit)
		}
	}

	for _, flow := range flows {
		metrics.History = append(metrics.History, *flow)
	}
	sort.Slice(metrics.History, func(i, j int) bool {
		return metrics.History[i].Period < metrics.History[j].Period
	})
	metrics.Profit = metrics.Income.Sub(metrics.Expenses)
	return metrics
}
