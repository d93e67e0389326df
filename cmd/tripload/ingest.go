package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tripload/internal/db"
	"tripload/internal/exitcode"
	"tripload/internal/ingest"
	"tripload/internal/logging"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a trip export into the database",
	RunE:  runIngest,
}

func init() {
	f := ingestCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to the export file, .xlsx or .parquet (required)")
	f.StringVar(&cfg.SourceLabel, "source", "transporte", "Label identifying the export source in logs and registry")
	f.BoolVar(&cfg.Force, "force", false, "Re-import even if file SHA already exists")
	f.BoolVar(&cfg.KeepStaging, "keep-staging", false, "Keep staging rows after transform")
	_ = ingestCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	now := time.Now()
	ctx := context.Background()

	log, errLog, err := logging.SetupPipeline(cfg.LogFormat, cfg.LogDir, cfg.SourceLabel, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup failed: %v\n", err)
		os.Exit(exitcode.UsageError)
	}
	defer errLog.Close()

	if err := loadConfigFile(); err != nil {
		log.Error().Err(err).Msg("config file invalid")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := ingest.Run(ctx, pool, log, &cfg, now)
	if err != nil {
		if pe, ok := err.(*ingest.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("ingest failed")
			switch pe.Phase {
			case "preflight":
				os.Exit(exitcode.ValidationError)
			case "stage":
				os.Exit(exitcode.CopyError)
			default:
				os.Exit(exitcode.TransformError)
			}
		}
		log.Error().Err(err).Msg("ingest failed")
		os.Exit(exitcode.TransformError)
	}

	fmt.Printf("Load complete: %d rows staged, %d in serving table, %d dates recovered (%.1fs)\n",
		summary.RowsStaged, summary.RowsServing, summary.DatesRecovered, summary.DurationTotal.Seconds())
	return nil
}
