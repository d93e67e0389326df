package ingest

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"tripload/internal/config"
	"tripload/internal/db"
	"tripload/internal/model"
	"tripload/internal/normalize"
	"tripload/internal/sheetread"
	embedsql "tripload/internal/sql"
	"tripload/internal/validate"
)

const readBatchSize = 1024

// StageResult holds metrics from the staging phase.
type StageResult struct {
	RowsRead       int64
	RowsStaged     int64
	RowsRejected   int64
	DatesSanitized int64
	DatesSentinel  int64
	DatesRecovered int64
	Duration       time.Duration
}

// Stage streams rows from the export, runs the date sanitize/validate core
// on every configured date column, and COPY-loads the cleaned rows into the
// staging table via a channel-backed CopyFromSource. Diagnostics are logged
// as they occur and persisted to ingest.row_diagnostics after the COPY; the
// sanitize rewrite summary is flushed once for the whole batch.
func Stage(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult, cfg *config.Config, now time.Time) (*StageResult, error) {
	start := time.Now()

	reader, err := sheetread.Open(pf.FilePath)
	if err != nil {
		return nil, fmt.Errorf("stage open: %w", err)
	}
	defer reader.Close()

	ch := make(chan *model.StagingRow, readBatchSize)
	errCh := make(chan error, 1)

	var rowsRead, rowsRejected int64
	var stats SanitizeStats
	var diags []validate.Diagnostic
	var sentinels, recovered int64

	sourceName := filepath.Base(pf.FilePath)

	// Producer goroutine: read export → sanitize/validate → push to channel
	go func() {
		defer close(ch)
		buf := make([]model.TripRow, readBatchSize)
		var rowNum int64

		for {
			n, readErr := reader.Read(buf)
			for i := 0; i < n; i++ {
				rowNum++
				rowsRead++

				if buf[i].Status == "" && buf[i].Product == "" {
					rowsRejected++
					log.Warn().Int64("row", rowNum).Msg("row rejected: no status or product")
					continue
				}

				staging, rowDiags, convErr := toStagingRow(&buf[i], pf, sourceName, rowNum, cfg.DateColumns, now, &stats)
				if convErr != nil {
					// Contract violation, not bad data; abort the batch.
					errCh <- convErr
					return
				}
				for _, d := range rowDiags {
					logDiagnostic(log, d)
					if d.Severity == validate.SeverityError {
						recovered++
					} else {
						sentinels++
					}
				}
				diags = append(diags, rowDiags...)

				select {
				case ch <- staging:
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				}
			}
			if readErr == io.EOF {
				break
			}
			if readErr != nil {
				errCh <- fmt.Errorf("read export at row %d: %w", rowNum, readErr)
				return
			}
		}
		errCh <- nil
	}()

	// Consumer: COPY from channel into staging table
	source := db.NewChannelSource(ch)
	rowsStaged, err := pool.CopyFrom(ctx,
		pgx.Identifier{"ingest", "stage_trip_rows"},
		model.StagingColumns(),
		source,
	)

	// Wait for producer to finish
	prodErr := <-errCh
	if prodErr != nil {
		return nil, fmt.Errorf("stage producer: %w", prodErr)
	}
	if err != nil {
		return nil, fmt.Errorf("stage copy: %w", err)
	}

	if err := persistDiagnostics(ctx, pool, pf, diags); err != nil {
		return nil, fmt.Errorf("stage diagnostics: %w", err)
	}

	// One informational summary per batch, not one log line per row.
	stats.LogSummary(log)

	dur := time.Since(start)
	log.Info().
		Int64("rows_read", rowsRead).
		Int64("rows_staged", rowsStaged).
		Int64("rows_rejected", rowsRejected).
		Int64("dates_sanitized", stats.Rewrites).
		Int64("dates_sentinel", sentinels).
		Int64("dates_recovered", recovered).
		Str("duration", dur.String()).
		Msg("staging complete")

	return &StageResult{
		RowsRead:       rowsRead,
		RowsStaged:     rowsStaged,
		RowsRejected:   rowsRejected,
		DatesSanitized: stats.Rewrites,
		DatesSentinel:  sentinels,
		DatesRecovered: recovered,
		Duration:       dur,
	}, nil
}

// toStagingRow cleans one export row: text/plate/invoice normalization plus
// the sanitize→validate pipeline on each configured date column. The error
// return is reserved for validation contract violations, which abort the
// batch; bad data never errors, it produces diagnostics.
func toStagingRow(row *model.TripRow, pf *PreflightResult, sourceName string, rowNum int64, dateCols []model.DateColumn, now time.Time, stats *SanitizeStats) (*model.StagingRow, []validate.Diagnostic, error) {
	s := &model.StagingRow{
		IngestBatchID:   pf.IngestBatchID,
		SourceFileID:    pf.SourceFileID,
		SourceRowNumber: rowNum,

		Status:     row.Status,
		StatusNorm: normalize.NormalizeText(row.Status),

		Product:     row.Product,
		ProductNorm: normalize.NormalizeText(row.Product),

		Plate:     row.Plate,
		PlateNorm: normalize.NormalizePlate(row.Plate),

		Shipper:         row.Shipper,
		OriginCity:      row.OriginCity,
		DestinationCity: row.DestinationCity,
		LastPosition:    row.LastPosition,
	}

	if row.Invoice != nil {
		if inv := normalize.CleanInvoice(*row.Invoice); inv != "" {
			s.Invoice = &inv
		}
	}

	var diags []validate.Diagnostic
	for _, dc := range dateCols {
		raw := rawDateCell(row, dc.Name)

		sanitized := normalize.SanitizeDate(raw)
		stats.Record(raw, sanitized)

		out, err := validate.Validate(sanitized, raw, validate.Context{
			SourceFile:       sourceName,
			Row:              rowNum,
			Label:            dc.Label,
			SentinelExpected: dc.SentinelExpected,
		}, now)
		if err != nil {
			return nil, nil, err
		}

		if err := applyOutcome(s, dc.Name, out); err != nil {
			return nil, nil, err
		}
		if out.Diagnostic != nil {
			diags = append(diags, *out.Diagnostic)
		}
	}

	s.PositionReport = positionReport(s)

	s.SourceRowHash = normalize.RowHashFromValues(rowNum,
		row.Product,
		derefStr(row.Invoice),
		derefStr(row.Plate),
		derefStr(row.Shipper),
		derefStr(row.OriginCity),
		derefStr(row.DestinationCity),
	)

	return s, diags, nil
}

func rawDateCell(row *model.TripRow, column string) string {
	switch column {
	case "data_carregamento":
		return derefStr(row.LoadDate)
	case "data_chegada":
		return derefStr(row.ArrivalDate)
	case "data_descarga":
		return derefStr(row.DischargeDate)
	}
	return ""
}

func applyOutcome(s *model.StagingRow, column string, out validate.Outcome) error {
	rendered := out.Render()
	var at *time.Time
	if out.Kind != validate.KindSentinel {
		if t, err := time.Parse("02/01/2006", out.Date); err == nil {
			at = &t
		}
	}

	switch column {
	case "data_carregamento":
		s.LoadDate, s.LoadAt = rendered, at
	case "data_chegada":
		s.ArrivalDate, s.ArrivalAt = rendered, at
	case "data_descarga":
		s.DischargeDate, s.DischargeAt = rendered, at
	default:
		return fmt.Errorf("column %q is not a date column of the trip export", column)
	}
	return nil
}

func logDiagnostic(log zerolog.Logger, d validate.Diagnostic) {
	var ev *zerolog.Event
	if d.Severity == validate.SeverityError {
		ev = log.Error()
	} else {
		ev = log.Info()
	}
	ev = ev.
		Str("original_value", d.OriginalValue).
		Str("file", d.SourceFile).
		Int64("row", d.Row).
		Str("label", d.Label).
		Str("cause", string(d.Cause))
	if d.Fallback != "" {
		ev = ev.Str("fallback", d.Fallback)
	}
	ev.Msg(d.Message)
}

func persistDiagnostics(ctx context.Context, pool *pgxpool.Pool, pf *PreflightResult, diags []validate.Diagnostic) error {
	for _, d := range diags {
		_, err := pool.Exec(ctx, embedsql.InsertDiagnostic,
			pf.IngestBatchID, pf.SourceFileID,
			string(d.Severity), d.Message, d.OriginalValue,
			d.SourceFile, d.Row, d.Label, string(d.Cause), d.Fallback,
		)
		if err != nil {
			return fmt.Errorf("insert diagnostic (row %d): %w", d.Row, err)
		}
	}
	return nil
}

// UpdateStatus updates the source file status.
func UpdateStatus(ctx context.Context, pool *pgxpool.Pool, sourceFileID int64, status string) error {
	_, err := pool.Exec(ctx, embedsql.UpdateSourceStatus, sourceFileID, status)
	return err
}

// DeleteStagingBatch deletes staging rows for a specific batch (cleanup of
// failed runs).
func DeleteStagingBatch(ctx context.Context, pool *pgxpool.Pool, batchID uuid.UUID) error {
	_, err := pool.Exec(ctx, embedsql.DeleteStagingBatch, batchID)
	return err
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
