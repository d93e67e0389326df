// mkfixture generates a small synthetic trip export for local runs and
// testing, covering the date shapes the loader has to survive: suffixed
// timestamps, unpadded days, missing cells, and calendar-impossible values.
// Usage: go run ./cmd/mkfixture --out testdata/transporte.xlsx
//
//	go run ./cmd/mkfixture --out testdata/transporte.parquet
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goparquet "github.com/parquet-go/parquet-go"
	"github.com/xuri/excelize/v2"

	"tripload/internal/model"
)

func main() {
	out := flag.String("out", "testdata/transporte.xlsx", "output file (.xlsx or .parquet)")
	flag.Parse()

	rows := fixtureRows()

	var err error
	switch strings.ToLower(filepath.Ext(*out)) {
	case ".xlsx":
		err = writeXLSX(*out, rows)
	case ".parquet":
		err = writeParquet(*out, rows)
	default:
		err = fmt.Errorf("unsupported output format %q", filepath.Ext(*out))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "mkfixture: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d rows to %s\n", len(rows), *out)
}

func strp(s string) *string { return &s }

func fixtureRows() []model.TripRow {
	return []model.TripRow{
		{
			Status: "Em Trânsito", Product: "hidratado",
			Plate: strp("ABC1D23"), Invoice: strp("111.0"),
			Shipper: strp("Usina A"), OriginCity: strp("Araraquara"), DestinationCity: strp("Paulínia"),
			LastPosition: strp("Rod. SP-310"),
			LoadDate:     strp("09/02/2026 14:34:27 Seg"),
		},
		{
			Status: "Aguardando Descarga", Product: "anidro",
			Plate: strp("XYZ9K88"), Invoice: strp("222"),
			Shipper: strp("Usina B"), OriginCity: strp("Ribeirão"), DestinationCity: strp("Santos"),
			LastPosition: strp("Santos"),
			LoadDate:     strp("7/2/2026"), ArrivalDate: strp("08/02/2026 06:00"),
		},
		{
			Status: "Descarregado", Product: "diesel a s10",
			Plate: strp("JKL3M55"), Invoice: strp("333"),
			Shipper: strp("Usina C"), OriginCity: strp("Bauru"), DestinationCity: strp("Campinas"),
			LastPosition: strp("Campinas"),
			LoadDate:     strp("05/02/2026"), ArrivalDate: strp("06/02/2026"), DischargeDate: strp("09/02/2026 11:40"),
		},
		{
			Status: "Programado", Product: "gasolina a",
			Plate: strp("QRS7T21"), Invoice: strp("444"),
			Shipper: strp("Usina D"), OriginCity: strp("Lins"), DestinationCity: strp("Santos"),
			// no load date: exercises fallback recovery
		},
		{
			Status: "Em Trânsito", Product: "hidratado",
			Plate: strp("UVW2N90"), Invoice: strp("555"),
			Shipper: strp("Usina E"), OriginCity: strp("Jaú"), DestinationCity: strp("Paulínia"),
			LastPosition: strp("Chegada Paulínia"),
			LoadDate:     strp("31/02/2026"), // impossible date: exercises format-failure routing
		},
	}
}

func writeXLSX(path string, rows []model.TripRow) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := make([]any, 0, len(model.Columns()))
	for _, c := range model.Columns() {
		header = append(header, c)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	for i, r := range rows {
		cells := []any{
			r.Status, r.Product, deref(r.Plate), deref(r.Invoice),
			deref(r.Shipper), deref(r.OriginCity), deref(r.DestinationCity), deref(r.LastPosition),
			deref(r.LoadDate), deref(r.ArrivalDate), deref(r.DischargeDate),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func writeParquet(path string, rows []model.TripRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := goparquet.NewGenericWriter[model.TripRow](f)
	if _, err := w.Write(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return w.Close()
}
