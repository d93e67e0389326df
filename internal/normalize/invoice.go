package normalize

import "strings"

// CleanInvoice strips the float artifact exports attach to numeric invoice
// cells ("12345.0" → "12345") and maps missing-value artifacts to "".
func CleanInvoice(v string) string {
	s := strings.TrimSpace(v)
	if missingValues[strings.ToLower(s)] {
		return ""
	}
	return strings.TrimSuffix(s, ".0")
}
