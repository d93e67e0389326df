package ingest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Cleanup deletes staging rows for the given batch.
func Cleanup(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, batchID uuid.UUID) error {
	start := time.Now()

	if err := DeleteStagingBatch(ctx, pool, batchID); err != nil {
		return err
	}

	log.Info().
		Dur("duration", time.Since(start)).
		Msg("staging cleanup complete")

	return nil
}
