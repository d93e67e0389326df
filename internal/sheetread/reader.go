// Package sheetread streams TripRows out of a trip export. Two container
// formats are supported: Parquet (BI exports) and XLSX (spreadsheet
// platform exports). Cell addressing, batch-update mechanics, and anything
// that talks HTTP live outside this repo; all we take is a file.
package sheetread

import (
	"fmt"
	"path/filepath"
	"strings"

	"tripload/internal/model"
)

// Reader streams TripRow records from an export file.
type Reader interface {
	// Read reads up to len(rows) records into the provided slice.
	// Returns the number of rows read and io.EOF when done.
	Read(rows []model.TripRow) (int, error)
	// NumRows returns the total number of data rows in the file.
	NumRows() int64
	// Columns returns the column names present in the file, for validation.
	Columns() []string
	// Close releases all resources.
	Close() error
}

// Open opens a trip export, choosing the reader by file extension.
func Open(path string) (Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return OpenParquet(path)
	case ".xlsx":
		return OpenXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported export format %q (want .parquet or .xlsx)", filepath.Ext(path))
	}
}
