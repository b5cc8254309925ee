package accounting

import (
	"testing"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBalance(t *testing.T) {
	tests := []struct {
		name         string
		lines        []domain.JournalLine
		wantDebit    string
		wantCredit   string
		wantBalanced bool
	}{
		{
			name:         "balanced pair",
			lines:        []domain.JournalLine{line("1105", "1000", "0"), line("4135", "0", "1000")},
			wantDebit:    "1000",
			wantCredit:   "1000",
			wantBalanced: true,
		},
		{
			name:         "off by one hundred",
			lines:        []domain.JournalLine{line("1105", "1000", "0"), line("4135", "0", "900")},
			wantDebit:    "1000",
			wantCredit:   "900",
			wantBalanced: false,
		},
		{
			name:         "difference equal to tolerance",
			lines:        []domain.JournalLine{line("1105", "100.01", "0"), line("4135", "0", "100")},
			wantDebit:    "100.01",
			wantCredit:   "100",
			wantBalanced: true,
		},
		{
			name:         "difference above tolerance",
			lines:        []domain.JournalLine{line("1105", "100.02", "0"), line("4135", "0", "100")},
			wantDebit:    "100.02",
			wantCredit:   "100",
			wantBalanced: false,
		},
		{
			name:         "empty set",
			lines:        nil,
			wantDebit:    "0",
			wantCredit:   "0",
			wantBalanced: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateBalance(tt.lines)
			assertDecimal(t, tt.wantDebit, got.TotalDebit)
			assertDecimal(t, tt.wantCredit, got.TotalCredit)
			assert.Equal(t, tt.wantBalanced, got.IsBalanced)
		})
	}
}

func TestGuardApproval_CarriesTotals(t *testing.T) {
	err := GuardApproval([]domain.JournalLine{line("1105", "1000", "0"), line("4135", "0", "900")})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.NotNil(t, vErr.TotalDebit)
	require.NotNil(t, vErr.TotalCredit)
	assertDecimal(t, "1000", *vErr.TotalDebit)
	assertDecimal(t, "900", *vErr.TotalCredit)
	assertDecimal(t, "100", vErr.Difference())

	assert.NoError(t, GuardApproval([]domain.JournalLine{line("1105", "50", "0"), line("4135", "0", "50")}))
}

func TestValidateLines(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.JournalLine
		wantErr bool
	}{
		{name: "valid", lines: []domain.JournalLine{line("1105", "10", "0"), line("4135", "0", "10")}},
		{name: "single line", lines: []domain.JournalLine{line("1105", "10", "0")}, wantErr: true},
		{name: "missing account", lines: []domain.JournalLine{line("", "10", "0"), line("4135", "0", "10")}, wantErr: true},
		{name: "both sides set", lines: []domain.JournalLine{line("1105", "10", "10"), line("4135", "0", "10")}, wantErr: true},
		{name: "both sides zero", lines: []domain.JournalLine{line("1105", "0", "0"), line("4135", "0", "10")}, wantErr: true},
		{name: "negative debit", lines: []domain.JournalLine{line("1105", "-10", "0"), line("4135", "0", "10")}, wantErr: true},
		{name: "two decimals", lines: []domain.JournalLine{line("1105", "10.05", "0"), line("4135", "0", "10.05")}},
		{name: "trailing zero decimals", lines: []domain.JournalLine{line("1105", "10.500", "0"), line("4135", "0", "10.5")}},
		{name: "sub-cent debit", lines: []domain.JournalLine{line("1105", "10.005", "0"), line("4135", "0", "10.01")}, wantErr: true},
		{name: "sub-cent credit", lines: []domain.JournalLine{line("1105", "0.01", "0"), line("4135", "0", "0.004")}, wantErr: true},
		{name: "sub-cent only side", lines: []domain.JournalLine{line("1105", "0.004", "0"), line("4135", "0", "0.004")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLines(tt.lines)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// Ten lines of 10.005 balance against 100.05 before rounding but not after,
// so they must never reach the balance guard.
func TestValidateLines_RejectsSubCentAmountsThatBalanceUnrounded(t *testing.T) {
	lines := make([]domain.JournalLine, 0, 11)
	for i := 0; i < 10; i++ {
		lines = append(lines, line("5105", "10.005", "0"))
	}
	lines = append(lines, line("1105", "0", "100.05"))

	assert.NoError(t, GuardApproval(lines))
	assert.ErrorIs(t, ValidateLines(lines), apperrors.ErrValidation)
}

func TestCanTransition(t *testing.T) {
	allowed := [][2]domain.EntryState{
		{domain.EntryBorrador, domain.EntryAprobado},
		{domain.EntryBorrador, domain.EntryAnulado},
		{domain.EntryAprobado, domain.EntryAnulado},
	}
	for _, tr := range allowed {
		assert.NoError(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	rejected := [][2]domain.EntryState{
		{domain.EntryAprobado, domain.EntryBorrador},
		{domain.EntryAprobado, domain.EntryAprobado},
		{domain.EntryAnulado, domain.EntryBorrador},
		{domain.EntryAnulado, domain.EntryAprobado},
		{domain.EntryBorrador, domain.EntryBorrador},
	}
	for _, tr := range rejected {
		assert.ErrorIs(t, CanTransition(tr[0], tr[1]), apperrors.ErrValidation, "%s -> %s", tr[0], tr[1])
	}
}

func TestSignedBalance(t *testing.T) {
	assertDecimal(t, "70", SignedBalance(domain.NatureDebito, dec("100"), dec("30")))
	assertDecimal(t, "-70", SignedBalance(domain.NatureCredito, dec("100"), dec("30")))
	// unknown nature follows the credit convention
	assertDecimal(t, "-70", SignedBalance("", dec("100"), dec("30")))
}
