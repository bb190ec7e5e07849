package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normalizes text for matching: lowercased, diacritics stripped.
// "Envoy Proxy", "envoy proxy" and "Énvoy Proxy" all fold to the same
// string.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransform, s)
	if err != nil {
		// Fall back to plain lowercasing for any malformed input.
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// foldFields folds every token of s and collapses runs of whitespace.
func foldFields(s string) string {
	return strings.Join(strings.Fields(Fold(s)), " ")
}
