package normalize

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^A-Z0-9]`)

// NormalizePlate uppercases and strips everything but letters and digits,
// turning "abc-1d23" and "ABC 1D23" into the same match key.
// Returns nil if the input is nil or nothing survives the strip.
func NormalizePlate(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.ToUpper(strings.TrimSpace(*v))
	s = nonAlphanumeric.ReplaceAllString(s, "")
	if s == "" {
		return nil
	}
	return &s
}
