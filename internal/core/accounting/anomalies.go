package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// MaxPendingDrafts is the draft count above which a warning is raised.
	MaxPendingDrafts = 5
	// UnusualMovementWindow is the trailing window of the nature check.
	UnusualMovementWindow = 30 * 24 * time.Hour
)

var unusualMovementFactor = decimal.NewFromInt(2)

// DetectAnomalies evaluates the diagnostic rules over a snapshot of entries
// and lines, in order: unbalanced drafts, too many drafts, movements against
// account nature in the trailing window. When nothing fires a single info
// finding is returned.
func DetectAnomalies(entries []domain.EntrySnapshot, lines []domain.LineRecord, now time.Time) []domain.Finding {
	findings := make([]domain.Finding, 0)

	drafts := 0
	for _, e := range entries {
		if e.State != domain.EntryBorrador {
			continue
		}
		drafts++
		result := ValidateBalance(e.Lines)
		if !result.IsBalanced {
			findings = append(findings, domain.Finding{
				Severity:    domain.SeverityError,
				Title:       "Asiento Descuadrado",
				Description: fmt.Sprintf("El asiento \"%s\" tiene una diferencia de $%s", e.Description, result.Difference().StringFixed(2)),
				Suggestion:  "Revisa las partidas y corrige antes de aprobar",
			})
		}
	}

	if drafts > MaxPendingDrafts {
		findings = append(findings, domain.Finding{
			Severity:    domain.SeverityWarning,
			Title:       "Muchos Borradores Pendientes",
			Description: fmt.Sprintf("Tienes %d asientos en borrador sin aprobar", drafts),
			Suggestion:  "Revisa y aprueba los asientos pendientes para mantener la contabilidad al día",
		})
	}

	findings = append(findings, unusualMovements(lines, now)...)

	if len(findings) == 0 {
		findings = append(findings, domain.Finding{
			Severity:    domain.SeverityInfo,
			Title:       "¡Todo en Orden!",
			Description: "No se detectaron anomalías en tu contabilidad",
			Suggestion:  "Continúa con el buen trabajo",
		})
	}
	return findings
}

// unusualMovements flags accounts whose recent movements run against their
// nature by more than a factor of two. Findings are ordered by account code.
func unusualMovements(lines []domain.LineRecord, now time.Time) []domain.Finding {
	since := now.Add(-UnusualMovementWindow)
	window := domain.DateRange{Start: &since, End: &now}

	groups := groupByAccount(FilterApproved(lines, window))
	var findings []domain.Finding
	for _, code := range sortedCodes(groups) {
		acc := groups[code]
		switch {
		case acc.nature == domain.NatureDebito && acc.credit.GreaterThan(acc.debit.Mul(unusualMovementFactor)):
			findings = append(findings, unusualMovementFinding(code, acc.name, "Débito", "créditos", "débitos"))
		case acc.nature == domain.NatureCredito && acc.debit.GreaterThan(acc.credit.Mul(unusualMovementFactor)):
			findings = append(findings, unusualMovementFinding(code, acc.name, "Crédito", "débitos", "créditos"))
		}
	}
	return findings
}

func unusualMovementFinding(code, name, nature, more, less string) domain.Finding {
	return domain.Finding{
		Severity:    domain.SeverityWarning,
		Title:       "Movimiento Inusual",
		Description: fmt.Sprintf("La cuenta %s - %s (naturaleza %s) tiene más %s que %s", code, name, nature, more, less),
		Suggestion:  "Verifica que los movimientos sean correctos",
	}
}
