package accounting

import (
	"testing"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFinancialMetrics(t *testing.T) {
	lines := []domain.LineRecord{
		record("4135", domain.Ingreso, domain.NatureCredito, day(2024, 2, 10), "0", "300"),
		record("5105", domain.Gasto, domain.NatureDebito, day(2024, 2, 11), "120", "0"),
		record("4135", domain.Ingreso, domain.NatureCredito, day(2024, 1, 5), "0", "200"),
		record("1105", domain.Activo, domain.NatureDebito, day(2024, 1, 5), "200", "0"),
		record("5105", domain.Gasto, domain.NatureDebito, day(2024, 3, 1), "30", "5"),
	}

	m := ComputeFinancialMetrics(lines)

	assertDecimal(t, "500", m.Income)
	assertDecimal(t, "150", m.Expenses)
	assertDecimal(t, "350", m.Profit)

	require.Len(t, m.History, 3)
	assert.Equal(t, "2024-01", m.History[0].Period)
	assert.Equal(t, "2024-02", m.History[1].Period)
	assert.Equal(t, "2024-03", m.History[2].Period)
	assertDecimal(t, "200", m.History[0].Income)
	assertDecimal(t, "0", m.History[0].Expense)
	assertDecimal(t, "300", m.History[1].Income)
	assertDecimal(t, "120", m.History[1].Expense)
	assertDecimal(t, "30", m.History[2].Expense)
}

func TestComputeFinancialMetrics_Empty(t *testing.T) {
	m := ComputeFinancialMetrics(nil)
	assertDecimal(t, "0", m.Profit)
	assert.Empty(t, m.History)
	assert.NotNil(t, m.History)
}
