// Package validate decides what a sanitized date cell becomes: a clean
// DD/MM/YYYY value, the sentinel for rows where no date is expected yet, or
// a fallback date with an attached diagnostic. The decision is a pure
// function of its inputs; all logging and persistence of diagnostics is the
// caller's job.
package validate

import (
	"fmt"
	"time"

	"tripload/internal/normalize"
)

// SentinelMarker is written in place of a date when the record legitimately
// has none yet (the vehicle has not reached a tracked location).
const SentinelMarker = "NO LOCAL"

// Kind discriminates the three possible outcomes of a validation.
type Kind int

const (
	// KindValid: the sanitized value formatted cleanly.
	KindValid Kind = iota
	// KindSentinel: no date, and that is the expected business state.
	KindSentinel
	// KindRecovered: no usable date where one was required; the processing
	// date was substituted and a diagnostic records the substitution.
	KindRecovered
)

// Cause records why an empty-path outcome was taken, so operators can tell
// an absent cell from a malformed one.
type Cause string

const (
	CauseEmpty  Cause = "empty"
	CauseFormat Cause = "format"
)

// Context carries the provenance of the value under validation.
// SourceFile and Row are required; Label is a free-form tag for operators
// (sheet name, column, carrier). SentinelExpected marks columns where an
// empty date is a normal stage of the record's lifecycle.
type Context struct {
	SourceFile       string
	Row              int64
	Label            string
	SentinelExpected bool
}

func (c Context) check() error {
	if c.SourceFile == "" {
		return fmt.Errorf("validate: context missing source file (row %d, label %q)", c.Row, c.Label)
	}
	if c.Row < 1 {
		return fmt.Errorf("validate: context has invalid row %d (file %q)", c.Row, c.SourceFile)
	}
	return nil
}

// Severity of a Diagnostic. Sentinel outcomes are informational and must
// never count toward error totals.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Diagnostic is the data-quality record attached to sentinel and recovered
// outcomes. It is returned, not logged; the ingest layer routes it to the
// logger and the diagnostics table.
type Diagnostic struct {
	Severity      Severity
	Message       string
	OriginalValue string
	SourceFile    string
	Row           int64
	Label         string
	Cause         Cause
	Fallback      string // set only when a fallback date was substituted
}

// Outcome is the result of validating one date cell. Exactly one of the
// three kinds is produced per call; Diagnostic is non-nil for KindSentinel
// and KindRecovered.
type Outcome struct {
	Kind       Kind
	Date       string // formatted DD/MM/YYYY for KindValid and KindRecovered
	Marker     string // SentinelMarker for KindSentinel
	Diagnostic *Diagnostic
}

// Render produces the string handed to the sink.
func (o Outcome) Render() string {
	if o.Kind == KindSentinel {
		return o.Marker
	}
	return o.Date
}

// Validate classifies a sanitized date cell. The sentinel check runs before
// emptiness is judged an error; reversing that order misclassifies
// legitimately empty rows as failures. now supplies the processing date for
// fallback substitution and is fixed by the caller, once per batch.
//
// The only error return is a malformed Context, which is a contract
// violation the caller must treat as fatal.
func Validate(sanitized, raw string, ctx Context, now time.Time) (Outcome, error) {
	if err := ctx.check(); err != nil {
		return Outcome{}, err
	}

	cause := CauseEmpty
	if sanitized != "" {
		formatted, err := normalize.FormatDate(sanitized)
		if err == nil {
			return Outcome{Kind: KindValid, Date: formatted}, nil
		}
		// A failed parse routes like an absent value, but the diagnostic
		// must say so.
		cause = CauseFormat
	}

	if ctx.SentinelExpected {
		return Outcome{
			Kind:   KindSentinel,
			Marker: SentinelMarker,
			Diagnostic: &Diagnostic{
				Severity:      SeverityInfo,
				Message:       "date not yet available, sentinel applied",
				OriginalValue: raw,
				SourceFile:    ctx.SourceFile,
				Row:           ctx.Row,
				Label:         ctx.Label,
				Cause:         cause,
			},
		}, nil
	}

	fallback := now.Format("02/01/2006")
	msg := "empty date, fallback substituted"
	if cause == CauseFormat {
		msg = "failed to format date, fallback substituted"
	}
	return Outcome{
		Kind: KindRecovered,
		Date: fallback,
		Diagnostic: &Diagnostic{
			Severity:      SeverityError,
			Message:       msg,
			OriginalValue: raw,
			SourceFile:    ctx.SourceFile,
			Row:           ctx.Row,
			Label:         ctx.Label,
			Cause:         cause,
			Fallback:      fallback,
		},
	}, nil
}
