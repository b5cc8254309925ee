package utils

import (
	"strconv"
	"strings"
)

// FormatTaxID renders a NIT with thousands separators and its DV, e.g. "800.197.268-4".
func FormatTaxID(digits string, dv int) string {
	if digits == "" {
		return ""
	}
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return strings.Join(groups, ".") + "-" + strconv.Itoa(dv)
}
