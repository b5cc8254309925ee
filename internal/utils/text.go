package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldText lowercases s and strips diacritics so "Débito" matches "debito".
func FoldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// MatchesFolded reports whether any of the fields contains query, ignoring case and accents.
// An empty query matches everything.
func MatchesFolded(query string, fields ...string) bool {
	q := FoldText(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(FoldText(f), q) {
			return true
		}
	}
	return false
}
