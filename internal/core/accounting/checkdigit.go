package accounting

import (
	"strings"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
)

// dianPrimes are the DIAN weights. The last digit of a NIT is weighted by the
// first prime, the second-to-last by the second, and so on.
var dianPrimes = [...]int{3, 7, 13, 17, 19, 23, 29, 37, 41, 43, 47, 53, 59, 67, 71}

// MaxTaxIDDigits is the longest NIT the weighting table covers.
const MaxTaxIDDigits = len(dianPrimes)

// ErrTaxIDTooLong is returned for inputs with more digits than weights.
var ErrTaxIDTooLong = apperrors.NewValidationError("tax id has more than %d digits", MaxTaxIDDigits)

// CleanTaxID strips every non-digit character.
func CleanTaxID(taxID string) string {
	var b strings.Builder
	b.Grow(len(taxID))
	for _, r := range taxID {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ComputeCheckDigit returns the DIAN verification digit (DV) of a NIT.
// Non-digit characters are ignored and an empty input yields 0.
func ComputeCheckDigit(taxID string) (int, error) {
	digits := CleanTaxID(taxID)
	z := len(digits)
	if z == 0 {
		return 0, nil
	}
	if z > MaxTaxIDDigits {
		return 0, ErrTaxIDTooLong
	}

	sum := 0
	for i := 0; i < z; i++ {
		sum += int(digits[i]-'0') * dianPrimes[z-i-1]
	}

	remainder := sum % 11
	if remainder > 1 {
		return 11 - remainder, nil
	}
	return remainder, nil
}

// VerifyCheckDigit reports whether dv is the correct DV for taxID.
func VerifyCheckDigit(taxID string, dv int) (bool, error) {
	expected, err := ComputeCheckDigit(taxID)
	if err != nil {
		return false, err
	}
	return expected == dv, nil
}
