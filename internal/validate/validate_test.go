package validate

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 2, 9, 14, 30, 0, 0, time.UTC)

func ctx(sentinel bool) Context {
	return Context{SourceFile: "transporte.xlsx", Row: 7, Label: "data_chegada", SentinelExpected: sentinel}
}

func TestValidate_CleanDate(t *testing.T) {
	out, err := Validate("9/2/2026", "9/2/2026 08:00", ctx(false), testNow)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if out.Kind != KindValid {
		t.Fatalf("kind = %v, want KindValid", out.Kind)
	}
	if out.Date != "09/02/2026" {
		t.Errorf("date = %q, want zero-padded 09/02/2026", out.Date)
	}
	if out.Diagnostic != nil {
		t.Errorf("clean date produced a diagnostic: %+v", out.Diagnostic)
	}
	if out.Render() != "09/02/2026" {
		t.Errorf("Render() = %q", out.Render())
	}
}

func TestValidate_EmptySentinelExpected(t *testing.T) {
	out, err := Validate("", "nan", ctx(true), testNow)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if out.Kind != KindSentinel {
		t.Fatalf("kind = %v, want KindSentinel", out.Kind)
	}
	if out.Marker != SentinelMarker || out.Render() != "NO LOCAL" {
		t.Errorf("marker = %q, Render() = %q", out.Marker, out.Render())
	}
	d := out.Diagnostic
	if d == nil {
		t.Fatal("sentinel outcome must carry a diagnostic")
	}
	if d.Severity != SeverityInfo {
		t.Errorf("severity = %q, want info (sentinel rows are not errors)", d.Severity)
	}
	if d.OriginalValue != "nan" || d.SourceFile != "transporte.xlsx" || d.Row != 7 {
		t.Errorf("diagnostic context incomplete: %+v", d)
	}
	if d.Cause != CauseEmpty {
		t.Errorf("cause = %q, want empty", d.Cause)
	}
}

func TestValidate_EmptyNotExpected(t *testing.T) {
	out, err := Validate("", "", ctx(false), testNow)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if out.Kind != KindRecovered {
		t.Fatalf("kind = %v, want KindRecovered", out.Kind)
	}
	if out.Date != "09/02/2026" {
		t.Errorf("fallback = %q, want injected clock date 09/02/2026", out.Date)
	}
	d := out.Diagnostic
	if d == nil || d.Severity != SeverityError {
		t.Fatalf("expected exactly one error diagnostic, got %+v", d)
	}
	if d.Fallback != "09/02/2026" {
		t.Errorf("diagnostic fallback = %q", d.Fallback)
	}
	if d.Cause != CauseEmpty {
		t.Errorf("cause = %q, want empty", d.Cause)
	}
}

func TestValidate_ImpossibleDateRoutesAsFormatFailure(t *testing.T) {
	out, err := Validate("31/02/2026", "31/02/2026", ctx(false), testNow)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if out.Kind != KindRecovered {
		t.Fatalf("kind = %v, want KindRecovered", out.Kind)
	}
	d := out.Diagnostic
	if d == nil || d.Severity != SeverityError {
		t.Fatalf("expected error diagnostic, got %+v", d)
	}
	if d.Cause != CauseFormat {
		t.Errorf("cause = %q, want format (message must distinguish malformed from absent)", d.Cause)
	}
}

func TestValidate_FormatFailureStillSentinelEligible(t *testing.T) {
	// The sentinel flag is evaluated before emptiness/format is judged an
	// error; an unparseable cell on a sentinel-expected column is info.
	out, err := Validate("31/02/2026", "31/02/2026", ctx(true), testNow)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if out.Kind != KindSentinel {
		t.Fatalf("kind = %v, want KindSentinel", out.Kind)
	}
	if out.Diagnostic.Severity != SeverityInfo {
		t.Errorf("severity = %q, want info", out.Diagnostic.Severity)
	}
	if out.Diagnostic.Cause != CauseFormat {
		t.Errorf("cause = %q, want format", out.Diagnostic.Cause)
	}
}

func TestValidate_MalformedContext(t *testing.T) {
	if _, err := Validate("", "", Context{Row: 3}, testNow); err == nil {
		t.Error("missing source file must be rejected")
	}
	if _, err := Validate("", "", Context{SourceFile: "f.xlsx"}, testNow); err == nil {
		t.Error("zero row must be rejected")
	}
}
