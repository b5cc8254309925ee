package accounting

import (
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scanTime = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

func drafts(n int) []domain.EntrySnapshot {
	out := make([]domain.EntrySnapshot, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.EntrySnapshot{
			ID:          fmt.Sprintf("d-%d", i),
			Description: fmt.Sprintf("borrador %d", i),
			State:       domain.EntryBorrador,
		})
	}
	return out
}

func TestDetectAnomalies_NothingFound(t *testing.T) {
	findings := DetectAnomalies(nil, nil, scanTime)

	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityInfo, findings[0].Severity)
	assert.Equal(t, "¡Todo en Orden!", findings[0].Title)
}

func TestDetectAnomalies_TooManyDrafts(t *testing.T) {
	findings := DetectAnomalies(drafts(6), nil, scanTime)

	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityWarning, findings[0].Severity)
	assert.Equal(t, "Muchos Borradores Pendientes", findings[0].Title)
	assert.Equal(t, "Tienes 6 asientos en borrador sin aprobar", findings[0].Description)
}

func TestDetectAnomalies_FiveDraftsIsFine(t *testing.T) {
	findings := DetectAnomalies(drafts(5), nil, scanTime)

	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityInfo, findings[0].Severity)
}

func TestDetectAnomalies_UnbalancedDraft(t *testing.T) {
	entries := []domain.EntrySnapshot{
		{
			ID:          "e1",
			Description: "Pago nómina",
			State:       domain.EntryBorrador,
			Lines:       []domain.JournalLine{line("5105", "1000", "0"), line("1105", "0", "900")},
		},
		{
			ID:          "e2",
			Description: "Aprobado descuadrado no aplica",
			State:       domain.EntryAprobado,
			Lines:       []domain.JournalLine{line("5105", "1000", "0")},
		},
	}

	findings := DetectAnomalies(entries, nil, scanTime)

	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityError, findings[0].Severity)
	assert.Equal(t, "Asiento Descuadrado", findings[0].Title)
	assert.Equal(t, `El asiento "Pago nómina" tiene una diferencia de $100.00`, findings[0].Description)
}

func TestDetectAnomalies_RuleOrder(t *testing.T) {
	entries := drafts(6)
	entries[0].Lines = []domain.JournalLine{line("5105", "10", "0")}
	lines := []domain.LineRecord{
		record("1105", domain.Activo, domain.NatureDebito, scanTime.AddDate(0, 0, -2), "10", "50"),
	}

	findings := DetectAnomalies(entries, lines, scanTime)

	require.Len(t, findings, 3)
	assert.Equal(t, domain.SeverityError, findings[0].Severity)
	assert.Equal(t, "Muchos Borradores Pendientes", findings[1].Title)
	assert.Equal(t, "Movimiento Inusual", findings[2].Title)
}

func TestDetectAnomalies_UnusualMovement(t *testing.T) {
	recent := scanTime.AddDate(0, 0, -10)
	old := scanTime.AddDate(0, 0, -45)
	draftLine := record("1110", domain.Activo, domain.NatureDebito, recent, "0", "900")
	draftLine.EntryState = domain.EntryBorrador

	lines := []domain.LineRecord{
		// debit-nature account credited more than twice its debits
		record("1105", domain.Activo, domain.NatureDebito, recent, "100", "0"),
		record("1105", domain.Activo, domain.NatureDebito, recent, "0", "201"),
		// credit-nature account debited more than twice its credits
		record("2205", domain.Pasivo, domain.NatureCredito, recent, "500", "0"),
		record("2205", domain.Pasivo, domain.NatureCredito, recent, "0", "100"),
		// exactly twice is not unusual
		record("1305", domain.Activo, domain.NatureDebito, recent, "100", "200"),
		// outside the window
		record("4135", domain.Ingreso, domain.NatureCredito, old, "1000", "0"),
		draftLine,
	}

	findings := DetectAnomalies(nil, lines, scanTime)

	require.Len(t, findings, 2)
	assert.Equal(t, "La cuenta 1105 - Cuenta 1105 (naturaleza Débito) tiene más créditos que débitos", findings[0].Description)
	assert.Equal(t, "La cuenta 2205 - Cuenta 2205 (naturaleza Crédito) tiene más débitos que créditos", findings[1].Description)
	for _, f := range findings {
		assert.Equal(t, domain.SeverityWarning, f.Severity)
		assert.Equal(t, "Verifica que los movimientos sean correctos", f.Suggestion)
	}
}
