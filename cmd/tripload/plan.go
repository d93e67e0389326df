package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"tripload/internal/exitcode"
	"tripload/internal/ingest"
	"tripload/internal/logging"
	"tripload/internal/model"
	"tripload/internal/normalize"
	"tripload/internal/sheetread"
	"tripload/internal/validate"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and date-quality stats (no writes)",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to the export file (required)")
	f.StringVar(&cfg.SourceLabel, "source", "transporte", "Label identifying the export source")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	now := time.Now()

	if err := loadConfigFile(); err != nil {
		log.Error().Err(err).Msg("config file invalid")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sha, err := normalize.FileHash(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}

	reader, err := sheetread.Open(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open export file")
		os.Exit(exitcode.ValidationError)
	}
	defer reader.Close()

	if err := sheetread.ValidateColumns(reader.Columns(), cfg.DateColumns); err != nil {
		log.Error().Err(err).Msg("column validation failed")
		os.Exit(exitcode.ValidationError)
	}

	sourceName := filepath.Base(cfg.FilePath)
	var stats ingest.SanitizeStats
	var rowsRead, sentinels, recovered int64

	buf := make([]model.TripRow, 256)
	var rowNum int64
	for {
		n, readErr := reader.Read(buf)
		for i := 0; i < n; i++ {
			rowNum++
			rowsRead++
			for _, dc := range cfg.DateColumns {
				raw := rawDateCell(&buf[i], dc.Name)
				sanitized := normalize.SanitizeDate(raw)
				stats.Record(raw, sanitized)

				out, verr := validate.Validate(sanitized, raw, validate.Context{
					SourceFile:       sourceName,
					Row:              rowNum,
					Label:            dc.Label,
					SentinelExpected: dc.SentinelExpected,
				}, now)
				if verr != nil {
					log.Error().Err(verr).Msg("validation contract violation")
					os.Exit(exitcode.ValidationError)
				}
				switch out.Kind {
				case validate.KindSentinel:
					sentinels++
				case validate.KindRecovered:
					recovered++
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			log.Error().Err(readErr).Int64("row", rowNum).Msg("read failed")
			os.Exit(exitcode.ValidationError)
		}
	}

	stats.LogSummary(log)

	fmt.Printf("File:            %s\n", cfg.FilePath)
	fmt.Printf("SHA-256:         %s\n", sha)
	fmt.Printf("Rows:            %d\n", rowsRead)
	fmt.Printf("Dates sanitized: %d\n", stats.Rewrites)
	fmt.Printf("Sentinel dates:  %d\n", sentinels)
	fmt.Printf("Recoverable:     %d (would substitute %s)\n", recovered, now.Format("02/01/2006"))
	if recovered > 0 {
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}

func rawDateCell(row *model.TripRow, column string) string {
	var v *string
	switch column {
	case "data_carregamento":
		v = row.LoadDate
	case "data_chegada":
		v = row.ArrivalDate
	case "data_descarga":
		v = row.DischargeDate
	}
	if v == nil {
		return ""
	}
	return *v
}
