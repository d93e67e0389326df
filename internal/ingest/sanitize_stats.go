package ingest

import "github.com/rs/zerolog"

// maxSanitizeExamples caps how many before/after pairs the batch summary
// carries; counting is exact, examples are a sample.
const maxSanitizeExamples = 5

// SanitizeExample is one before/after pair retained for the batch summary.
type SanitizeExample struct {
	Before string
	After  string
}

// SanitizeStats counts date-cell rewrites for one batch. The sanitizer
// itself is stateless; each worker owns one SanitizeStats and flushes a
// single informational summary per batch, so per-row log flooding never
// happens and no synchronization is needed.
type SanitizeStats struct {
	Rewrites int64
	Examples []SanitizeExample
}

// Record notes one sanitize call. Only calls whose output differs from the
// input count as rewrites.
func (s *SanitizeStats) Record(before, after string) {
	if before == after {
		return
	}
	s.Rewrites++
	if len(s.Examples) < maxSanitizeExamples {
		s.Examples = append(s.Examples, SanitizeExample{Before: before, After: after})
	}
}

// LogSummary emits the one-per-batch informational summary. Silent when
// nothing was rewritten.
func (s *SanitizeStats) LogSummary(log zerolog.Logger) {
	if s.Rewrites == 0 {
		return
	}
	examples := zerolog.Arr()
	for _, ex := range s.Examples {
		examples = examples.Str(ex.Before + " -> " + ex.After)
	}
	log.Info().
		Int64("rewrites", s.Rewrites).
		Array("examples", examples).
		Msg("date cells sanitized")
}
