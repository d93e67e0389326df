package sheetread

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"tripload/internal/model"
)

func writeFixture(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := make([]any, 0, len(model.Columns()))
	for _, c := range model.Columns() {
		header = append(header, c)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("write header: %v", err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("write row %d: %v", i, err)
		}
	}

	path := filepath.Join(t.TempDir(), "trips.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save fixture: %v", err)
	}
	return path
}

func TestOpenXLSX_ReadsRows(t *testing.T) {
	path := writeFixture(t, [][]any{
		{"Em Trânsito", "hidratado", "ABC1D23", "12345.0", "Usina A", "Araraquara", "Paulínia", "Rod. SP-310", "09/02/2026 14:34:27 Seg", "", ""},
		{"Descarregado", "anidro", "XYZ9K88", "98765", "Usina B", "Ribeirão", "Santos", "", "08/02/2026", "09/02/2026 07:12", "09/02/2026 11:40"},
	})

	r, err := OpenXLSX(path)
	if err != nil {
		t.Fatalf("OpenXLSX: %v", err)
	}
	defer r.Close()

	if r.NumRows() != 2 {
		t.Fatalf("NumRows = %d, want 2", r.NumRows())
	}
	if err := ValidateColumns(r.Columns(), model.DefaultDateColumns); err != nil {
		t.Fatalf("ValidateColumns: %v", err)
	}

	buf := make([]model.TripRow, 4)
	n, err := r.Read(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("Read: %v", err)
	}
	if n != 2 {
		t.Fatalf("read %d rows, want 2", n)
	}

	first := buf[0]
	if first.Status != "Em Trânsito" || first.Product != "hidratado" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.LoadDate == nil || *first.LoadDate != "09/02/2026 14:34:27 Seg" {
		t.Errorf("raw date cell must pass through untouched, got %v", first.LoadDate)
	}
	if first.ArrivalDate != nil {
		t.Errorf("empty cell should decode to nil, got %q", *first.ArrivalDate)
	}

	if _, err := r.Read(buf); err != io.EOF {
		t.Errorf("expected io.EOF after exhaustion, got %v", err)
	}
}

func TestValidateColumns_MissingDateColumn(t *testing.T) {
	cols := []string{"status", "produto", "data_carregamento"}
	err := ValidateColumns(cols, model.DefaultDateColumns)
	if err == nil {
		t.Fatal("expected error for missing date columns")
	}
}

func TestValidateColumns_MissingRequired(t *testing.T) {
	cols := []string{"produto", "data_carregamento", "data_chegada", "data_descarga"}
	if err := ValidateColumns(cols, model.DefaultDateColumns); err == nil {
		t.Fatal("expected error for missing status column")
	}
}
