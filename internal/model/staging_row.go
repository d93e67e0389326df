package model

import (
	"time"

	"github.com/google/uuid"
)

// StagingRow is the cleaned, DB-ready representation of one trip line.
// Date columns carry both the rendered presentation string (formatted date
// or sentinel marker) and, when the date was valid, the parsed value used
// by the SQL transform.
type StagingRow struct {
	IngestBatchID uuid.UUID
	SourceFileID  int64

	SourceRowNumber int64
	SourceRowHash   []byte

	Status     string
	StatusNorm string

	Product     string
	ProductNorm string

	Plate     *string
	PlateNorm *string

	Invoice *string

	Shipper         *string
	OriginCity      *string
	DestinationCity *string
	LastPosition    *string

	LoadDate      string
	LoadAt        *time.Time
	ArrivalDate   string
	ArrivalAt     *time.Time
	DischargeDate string
	DischargeAt   *time.Time

	// PositionReport is the operator-facing "date | position" composite,
	// rendered by the ingest layer once the date columns are settled.
	PositionReport string
}

// StagingColumns returns the ordered column names for COPY into
// ingest.stage_trip_rows.
func StagingColumns() []string {
	return []string{
		"ingest_batch_id",
		"source_file_id",
		"source_row_number",
		"source_row_hash",
		"status",
		"status_norm",
		"product",
		"product_norm",
		"plate",
		"plate_norm",
		"invoice",
		"shipper",
		"origin_city",
		"destination_city",
		"last_position",
		"load_date",
		"load_at",
		"arrival_date",
		"arrival_at",
		"discharge_date",
		"discharge_at",
		"position_report",
	}
}

// CopyValues returns the row values in the same order as StagingColumns(),
// suitable for pgx CopyFromSource.
func (r *StagingRow) CopyValues() []any {
	return []any{
		r.IngestBatchID,
		r.SourceFileID,
		r.SourceRowNumber,
		r.SourceRowHash,
		r.Status,
		r.StatusNorm,
		r.Product,
		r.ProductNorm,
		r.Plate,
		r.PlateNorm,
		r.Invoice,
		r.Shipper,
		r.OriginCity,
		r.DestinationCity,
		r.LastPosition,
		r.LoadDate,
		r.LoadAt,
		r.ArrivalDate,
		r.ArrivalAt,
		r.DischargeDate,
		r.DischargeAt,
		r.PositionReport,
	}
}
