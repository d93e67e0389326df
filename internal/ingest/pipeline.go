package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"tripload/internal/config"
	"tripload/internal/model"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full load pipeline: preflight → stage → transform →
// finalize → cleanup. now is the processing date used for fallback
// substitution and waiting-time computation; it is fixed once per run so a
// batch that straddles midnight stays internally consistent.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config, now time.Time) (*model.LoadSummary, error) {
	totalStart := time.Now()

	// Phase 1: Preflight
	log.Info().Str("file", cfg.FilePath).Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, cfg)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	if pf.AlreadyLoaded {
		log.Info().
			Int64("source_file_id", pf.SourceFileID).
			Str("sha256", pf.FileSHA256).
			Msg("file already loaded, skipping (use --force to re-import)")
		return &model.LoadSummary{
			FilePath:      pf.FilePath,
			FileSHA256:    pf.FileSHA256,
			SourceFileID:  pf.SourceFileID,
			IngestBatchID: pf.IngestBatchID.String(),
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	// Phase 2: Stage
	log.Info().Msg("starting staging")
	if err := UpdateStatus(ctx, pool, pf.SourceFileID, "staging"); err != nil {
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	stageResult, err := Stage(ctx, pool, log, pf, cfg, now)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.SourceFileID, "failed")
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	if err := UpdateStatus(ctx, pool, pf.SourceFileID, "staged"); err != nil {
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	// Phase 3: Transform
	log.Info().Msg("starting transform")
	transformResult, err := Transform(ctx, pool, log, pf, cfg.Force, now)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.SourceFileID, "failed")
		return nil, &PipelineError{Phase: "transform", Err: err}
	}

	// Phase 4: Finalize
	log.Info().Msg("finalizing")
	_, err = Finalize(ctx, pool, log, pf.SourceFileID)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.SourceFileID, "failed")
		return nil, &PipelineError{Phase: "finalize", Err: err}
	}

	// Phase 5: Cleanup staging
	if !cfg.KeepStaging {
		log.Info().Msg("cleaning up staging")
		if err := Cleanup(ctx, pool, log, pf.IngestBatchID); err != nil {
			log.Warn().Err(err).Msg("staging cleanup failed (non-fatal)")
		}
	}

	summary := &model.LoadSummary{
		FilePath:       pf.FilePath,
		FileSHA256:     pf.FileSHA256,
		SourceFileID:   pf.SourceFileID,
		IngestBatchID:  pf.IngestBatchID.String(),
		RowsRead:       stageResult.RowsRead,
		RowsStaged:     stageResult.RowsStaged,
		RowsRejected:   stageResult.RowsRejected,
		RowsServing:    transformResult.RowsServing,
		DatesSanitized: stageResult.DatesSanitized,
		DatesSentinel:  stageResult.DatesSentinel,
		DatesRecovered: stageResult.DatesRecovered,
		DurationStage:  stageResult.Duration,
		DurationTotal:  time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_staged", summary.RowsStaged).
		Int64("rows_serving", summary.RowsServing).
		Int64("rows_rejected", summary.RowsRejected).
		Int64("dates_sanitized", summary.DatesSanitized).
		Int64("dates_sentinel", summary.DatesSentinel).
		Int64("dates_recovered", summary.DatesRecovered).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("load pipeline complete")

	return summary, nil
}
