package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tripload/internal/model"
	"tripload/internal/validate"
)

var stageNow = time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)

func testPreflight() *PreflightResult {
	return &PreflightResult{
		FilePath:      "/exports/transporte.xlsx",
		SourceFileID:  42,
		IngestBatchID: uuid.New(),
	}
}

func strp(s string) *string { return &s }

func TestToStagingRow_CleanRow(t *testing.T) {
	row := &model.TripRow{
		Status:        "Em Trânsito",
		Product:       "hidratado",
		Plate:         strp("abc-1d23"),
		Invoice:       strp("12345.0"),
		LoadDate:      strp("9/2/2026 14:34:27 Seg"),
		ArrivalDate:   strp(""),
		DischargeDate: strp(""),
	}

	var stats SanitizeStats
	s, diags, err := toStagingRow(row, testPreflight(), "transporte.xlsx", 1, model.DefaultDateColumns, stageNow, &stats)
	if err != nil {
		t.Fatalf("toStagingRow: %v", err)
	}

	if s.StatusNorm != "EM TRANSITO" {
		t.Errorf("status_norm = %q", s.StatusNorm)
	}
	if s.PlateNorm == nil || *s.PlateNorm != "ABC1D23" {
		t.Errorf("plate_norm = %v", s.PlateNorm)
	}
	if s.Invoice == nil || *s.Invoice != "12345" {
		t.Errorf("invoice = %v", s.Invoice)
	}
	if s.LoadDate != "09/02/2026" {
		t.Errorf("load_date = %q, want formatted 09/02/2026", s.LoadDate)
	}
	if s.LoadAt == nil || !s.LoadAt.Equal(time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("load_at = %v", s.LoadAt)
	}

	// Arrival and discharge are sentinel-expected; empty cells become the
	// marker with info diagnostics, never errors.
	if s.ArrivalDate != validate.SentinelMarker || s.DischargeDate != validate.SentinelMarker {
		t.Errorf("sentinel columns = %q / %q", s.ArrivalDate, s.DischargeDate)
	}
	if s.ArrivalAt != nil || s.DischargeAt != nil {
		t.Error("sentinel outcomes must not carry parsed dates")
	}
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(diags))
	}
	for _, d := range diags {
		if d.Severity != validate.SeverityInfo {
			t.Errorf("sentinel diagnostic severity = %q", d.Severity)
		}
	}

	if stats.Rewrites != 1 {
		t.Errorf("rewrites = %d, want 1 (only the suffixed load date)", stats.Rewrites)
	}
}

func TestToStagingRow_MissingLoadDateRecovers(t *testing.T) {
	row := &model.TripRow{
		Status:  "Programado",
		Product: "anidro",
		// no load date at all
		ArrivalDate:   strp("10/02/2026"),
		DischargeDate: strp("11/02/2026 08:15"),
	}

	var stats SanitizeStats
	s, diags, err := toStagingRow(row, testPreflight(), "transporte.xlsx", 3, model.DefaultDateColumns, stageNow, &stats)
	if err != nil {
		t.Fatalf("toStagingRow: %v", err)
	}

	if s.LoadDate != "09/02/2026" {
		t.Errorf("load_date = %q, want fallback 09/02/2026", s.LoadDate)
	}

	var errCount int
	for _, d := range diags {
		if d.Severity == validate.SeverityError {
			errCount++
			if d.Fallback != "09/02/2026" {
				t.Errorf("diagnostic fallback = %q", d.Fallback)
			}
			if d.Row != 3 || d.SourceFile != "transporte.xlsx" {
				t.Errorf("diagnostic provenance: %+v", d)
			}
		}
	}
	if errCount != 1 {
		t.Fatalf("expected exactly one error diagnostic, got %d", errCount)
	}

	if s.ArrivalDate != "10/02/2026" || s.DischargeDate != "11/02/2026" {
		t.Errorf("valid dates mangled: %q / %q", s.ArrivalDate, s.DischargeDate)
	}
}

func TestSanitizeStats_CountsAndCapsExamples(t *testing.T) {
	var stats SanitizeStats
	for i := 0; i < 8; i++ {
		stats.Record("09/02/2026 14:00 Seg", "09/02/2026")
	}
	stats.Record("unchanged", "unchanged")

	if stats.Rewrites != 8 {
		t.Errorf("rewrites = %d, want 8", stats.Rewrites)
	}
	if len(stats.Examples) != maxSanitizeExamples {
		t.Errorf("examples = %d, want %d", len(stats.Examples), maxSanitizeExamples)
	}
}

func TestSanitizeStats_SummaryIsSingleEvent(t *testing.T) {
	var stats SanitizeStats
	stats.Record("a 1", "a")
	stats.Record("b 2", "b")

	var sb strings.Builder
	log := zerolog.New(&sb)
	stats.LogSummary(log)

	out := strings.TrimSpace(sb.String())
	if out == "" {
		t.Fatal("expected a summary event")
	}
	if n := strings.Count(out, "\n"); n != 0 {
		t.Errorf("summary must be one event, got %d lines", n+1)
	}
	if !strings.Contains(out, `"rewrites":2`) {
		t.Errorf("summary missing rewrite count: %s", out)
	}

	var quiet SanitizeStats
	sb.Reset()
	quiet.LogSummary(log)
	if sb.Len() != 0 {
		t.Errorf("no-rewrite batch must stay silent, got %s", sb.String())
	}
}

func TestApplyOutcome_UnknownColumn(t *testing.T) {
	s := &model.StagingRow{}
	err := applyOutcome(s, "status", validate.Outcome{Kind: validate.KindValid, Date: "09/02/2026"})
	if err == nil {
		t.Fatal("expected error for non-date column")
	}
}
