package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "tripload/internal/sql"
)

// TransformResult holds metrics from the staging→serving transformation.
type TransformResult struct {
	RowsServing int64
	Duration    time.Duration
}

// Transform moves the staged batch into the serving table, deriving
// days_waiting for arrived-but-undischarged trips and the atual/historico
// bucket from the processing date. Force runs clear the file's previous
// serving rows first so rows dropped from the export do not linger.
func Transform(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult, force bool, now time.Time) (*TransformResult, error) {
	start := time.Now()

	if force {
		tag, err := pool.Exec(ctx, embedsql.DeleteServingForFile, pf.SourceFileID)
		if err != nil {
			return nil, fmt.Errorf("clear serving rows: %w", err)
		}
		log.Info().Int64("rows_cleared", tag.RowsAffected()).Msg("previous serving rows cleared")
	}

	tag, err := pool.Exec(ctx, embedsql.TransformStageToServing, pf.IngestBatchID, now)
	if err != nil {
		return nil, fmt.Errorf("transform stage to serving: %w", err)
	}

	dur := time.Since(start)
	rows := tag.RowsAffected()

	log.Info().
		Int64("rows_serving", rows).
		Str("duration", dur.String()).
		Msg("transform complete")

	return &TransformResult{
		RowsServing: rows,
		Duration:    dur,
	}, nil
}
