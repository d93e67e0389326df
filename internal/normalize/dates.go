package normalize

import (
	"regexp"
	"strings"
	"time"
)

// datePrefix matches a day-first date at the start of a cell value.
// Day and month may be one or two digits; the year must be four.
var datePrefix = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}`)

// missingValues are the spreadsheet/pandas artifacts that stand in for an
// absent cell after an export round-trip.
var missingValues = map[string]bool{
	"":     true,
	"nan":  true,
	"none": true,
	"nat":  true,
}

// SanitizeDate reduces a raw cell value to its date-only prefix, discarding
// trailing time-of-day and weekday tokens ("09/02/2026 14:34:27 Seg" →
// "09/02/2026"). Missing-value artifacts map to the empty string. When no
// date prefix is recognized the trimmed input is returned unchanged; it is
// the formatter's job to reject malformed results. Never errors, idempotent.
func SanitizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if missingValues[strings.ToLower(s)] {
		return ""
	}
	if m := datePrefix.FindString(s); m != "" {
		return m
	}
	return s
}

// FormatDate parses a sanitized day-first date and renders it zero-padded
// DD/MM/YYYY. Calendar impossibilities (31/02) fail here, not in sanitize.
func FormatDate(s string) (string, error) {
	t, err := time.Parse("2/1/2006", s)
	if err != nil {
		return "", err
	}
	return t.Format("02/01/2006"), nil
}
