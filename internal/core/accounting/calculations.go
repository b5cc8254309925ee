package accounting

import (
	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the currency rounding tolerance of the double-entry check.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// MinEntryLines is the smallest number of lines a journal entry may carry.
const MinEntryLines = 2

// AmountScale is the number of decimal places amounts are stored with.
const AmountScale = 2

// ValidateBalance sums debits and credits. The lines balance when
// |debit - credit| <= BalanceTolerance.
func ValidateBalance(lines []domain.JournalLine) domain.BalanceResult {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, l := range lines {
		totalDebit = totalDebit.Add(l.Debit)
		totalCredit = totalCredit.Add(l.Credit)
	}
	return domain.BalanceResult{
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		IsBalanced:  totalDebit.Sub(totalCredit).Abs().LessThanOrEqual(BalanceTolerance),
	}
}

// ValidateLines checks the structure of entry lines: every line references an
// account, amounts are non-negative with at most AmountScale decimals, and
// exactly one side is non-zero.
func ValidateLines(lines []domain.JournalLine) error {
	if len(lines) < MinEntryLines {
		return apperrors.NewValidationError("journal entry must have at least %d lines", MinEntryLines)
	}
	for i, l := range lines {
		if l.AccountCode == "" {
			return apperrors.NewValidationError("line %d: account is required", i+1)
		}
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return apperrors.NewValidationError("line %d: debit and credit must be non-negative", i+1)
		}
		if !hasScale(l.Debit, AmountScale) || !hasScale(l.Credit, AmountScale) {
			return apperrors.NewValidationError("line %d: amounts allow at most %d decimal places", i+1, AmountScale)
		}
		hasDebit := l.Debit.IsPositive()
		hasCredit := l.Credit.IsPositive()
		if hasDebit == hasCredit {
			return apperrors.NewValidationError("line %d: exactly one of debit or credit must be greater than zero", i+1)
		}
	}
	return nil
}

// hasScale reports whether d is exactly representable with places decimals.
func hasScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Round(places))
}

// GuardApproval runs before any persistence of an approval. It returns a
// ValidationError carrying both totals when the lines do not balance.
func GuardApproval(lines []domain.JournalLine) error {
	result := ValidateBalance(lines)
	if !result.IsBalanced {
		return apperrors.NewUnbalancedError(result.TotalDebit, result.TotalCredit)
	}
	return nil
}

// SignedBalance applies the nature convention: DEBITO accounts report
// debit - credit, every other nature reports credit - debit.
func SignedBalance(nature domain.AccountNature, debit, credit decimal.Decimal) decimal.Decimal {
	if nature == domain.NatureDebito {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

// CanTransition enforces the entry lifecycle.
func CanTransition(from, to domain.EntryState) error {
	switch {
	case from == domain.EntryBorrador && to == domain.EntryAprobado:
		return nil
	case from == domain.EntryBorrador && to == domain.EntryAnulado:
		return nil
	case from == domain.EntryAprobado && to == domain.EntryAnulado:
		return nil
	}
	return apperrors.NewValidationError("invalid state transition %s -> %s", from, to)
}
