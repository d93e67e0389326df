package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"tripload/internal/config"
	"tripload/internal/normalize"
	"tripload/internal/sheetread"
	embedsql "tripload/internal/sql"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	// FilePath is the original path passed to Preflight, stored as-is.
	FilePath string
	// FileSHA256 is the hex-encoded SHA-256 digest of the export file.
	FileSHA256 string
	// FileSize is the file size in bytes from os.Stat.
	FileSize int64
	// SourceFileID is the DB primary key for this export, inserted or looked
	// up via (source_label, sha256).
	SourceFileID int64
	// IngestBatchID is a freshly generated UUIDv4 identifying this run, used
	// to tag staged rows and diagnostics for later transform/cleanup.
	IngestBatchID uuid.UUID
	// NumRows is the data row count reported by the export reader.
	NumRows int64
	// AlreadyLoaded is true when the file's sha256 already exists with
	// status "loaded" and force mode is off, signaling the pipeline can
	// skip this file.
	AlreadyLoaded bool
}

// Preflight hashes the export, validates its columns against the configured
// date columns, and registers the source file.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*PreflightResult, error) {
	start := time.Now()

	sha, err := normalize.FileHash(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	stat, err := os.Stat(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("preflight stat: %w", err)
	}

	reader, err := sheetread.Open(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("preflight open: %w", err)
	}
	defer reader.Close()

	if err := sheetread.ValidateColumns(reader.Columns(), cfg.DateColumns); err != nil {
		return nil, fmt.Errorf("preflight validate: %w", err)
	}

	numRows := reader.NumRows()

	log.Info().
		Str("file", filepath.Base(cfg.FilePath)).
		Str("sha256", sha).
		Int64("rows", numRows).
		Str("source", cfg.SourceLabel).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	sourceFileID, alreadyLoaded, err := registerSourceFile(ctx, pool, cfg, sha, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("preflight register file: %w", err)
	}

	return &PreflightResult{
		FilePath:      cfg.FilePath,
		FileSHA256:    sha,
		FileSize:      stat.Size(),
		SourceFileID:  sourceFileID,
		IngestBatchID: uuid.New(),
		NumRows:       numRows,
		AlreadyLoaded: alreadyLoaded,
	}, nil
}

func registerSourceFile(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config, sha string, size int64) (int64, bool, error) {
	var sourceFileID int64
	err := pool.QueryRow(ctx, embedsql.RegisterSourceFile,
		cfg.SourceLabel, filepath.Base(cfg.FilePath), sha, size,
	).Scan(&sourceFileID)

	if errors.Is(err, pgx.ErrNoRows) {
		// Already registered (ON CONFLICT DO NOTHING returned no rows).
		var status string
		if err2 := pool.QueryRow(ctx, embedsql.LookupSourceFile, cfg.SourceLabel, sha).Scan(&sourceFileID, &status); err2 != nil {
			return 0, false, fmt.Errorf("lookup existing source file: %w", err2)
		}

		if !cfg.Force && status == "loaded" {
			return sourceFileID, true, nil
		}

		// Reset status for re-import.
		if _, err3 := pool.Exec(ctx, embedsql.UpdateSourceStatus, sourceFileID, "pending"); err3 != nil {
			return 0, false, fmt.Errorf("reset source file status: %w", err3)
		}
		return sourceFileID, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("register source file: %w", err)
	}

	return sourceFileID, false, nil
}
