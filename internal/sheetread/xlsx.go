package sheetread

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"tripload/internal/model"
)

// XLSXReader serves TripRow records out of the first worksheet of an XLSX
// export. The whole sheet is materialized on open; trip exports are small
// enough that streaming is not worth the header bookkeeping.
type XLSXReader struct {
	columns []string
	rows    [][]string
	pos     int
}

// OpenXLSX opens an XLSX export and reads its first worksheet. The first
// row is taken as the header; header names are matched case-insensitively
// after trimming.
func OpenXLSX(path string) (*XLSXReader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx file has no worksheets")
	}

	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", sheets[0], err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("worksheet %q is empty", sheets[0])
	}

	header := make([]string, len(all[0]))
	for i, h := range all[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	return &XLSXReader{columns: header, rows: all[1:]}, nil
}

// NumRows returns the number of data rows (header excluded).
func (r *XLSXReader) NumRows() int64 {
	return int64(len(r.rows))
}

// Read fills rows with the next records. Returns io.EOF when exhausted.
func (r *XLSXReader) Read(rows []model.TripRow) (int, error) {
	if r.pos >= len(r.rows) {
		return 0, io.EOF
	}
	n := 0
	for n < len(rows) && r.pos < len(r.rows) {
		rows[n] = r.decode(r.rows[r.pos])
		r.pos++
		n++
	}
	if r.pos >= len(r.rows) {
		return n, io.EOF
	}
	return n, nil
}

// Columns returns the header names found in the first row.
func (r *XLSXReader) Columns() []string {
	return r.columns
}

// Close is a no-op; the workbook is released on open.
func (r *XLSXReader) Close() error { return nil }

func (r *XLSXReader) decode(cells []string) model.TripRow {
	cell := func(name string) string {
		for i, col := range r.columns {
			if col == name && i < len(cells) {
				return cells[i]
			}
		}
		return ""
	}
	opt := func(name string) *string {
		if v := cell(name); v != "" {
			return &v
		}
		return nil
	}

	return model.TripRow{
		Status:          cell("status"),
		Product:         cell("produto"),
		Plate:           opt("cavalo"),
		Invoice:         opt("nfe"),
		Shipper:         opt("expedidor"),
		OriginCity:      opt("cidade_origem"),
		DestinationCity: opt("cidade_destino"),
		LastPosition:    opt("ultima_posicao"),
		LoadDate:        opt("data_carregamento"),
		ArrivalDate:     opt("data_chegada"),
		DischargeDate:   opt("data_descarga"),
	}
}
