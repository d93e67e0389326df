package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "tripload/internal/sql"
)

// Finalize marks the source file loaded and refreshes planner statistics.
func Finalize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, sourceFileID int64) (time.Duration, error) {
	start := time.Now()

	if err := UpdateStatus(ctx, pool, sourceFileID, "loaded"); err != nil {
		return 0, fmt.Errorf("update status to loaded: %w", err)
	}

	if _, err := pool.Exec(ctx, embedsql.AnalyzeTables); err != nil {
		return 0, fmt.Errorf("analyze tables: %w", err)
	}
	log.Info().Int64("source_file_id", sourceFileID).Msg("source file finalized")

	return time.Since(start), nil
}
