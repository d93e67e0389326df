package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var multiSpace = regexp.MustCompile(`\s+`)

// stripAccents decomposes to NFD and removes combining marks, so "Trânsito"
// and "Transito" compare equal as match keys.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText uppercases, strips diacritics, and collapses whitespace.
// Returns "" for missing-value artifacts so cleaned columns compare cleanly.
func NormalizeText(v string) string {
	s := strings.TrimSpace(v)
	if missingValues[strings.ToLower(s)] {
		return ""
	}
	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}
	s = strings.ToUpper(s)
	return multiSpace.ReplaceAllString(s, " ")
}
