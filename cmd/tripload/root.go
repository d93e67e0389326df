package main

import (
	"os"

	"github.com/spf13/cobra"

	"tripload/internal/config"
)

var cfg config.Config

var configFile string

var rootCmd = &cobra.Command{
	Use:   "tripload",
	Short: "Transport-trip spreadsheet export → Postgres loader",
	Long:  "Reads trip exports (XLSX or Parquet), cleans and validates their date columns, and bulk-loads them into Postgres via the COPY protocol.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DATABASE_URL"), "Postgres connection string (or set DATABASE_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogDir, "log-dir", "logs", "Directory for per-run error log files")
	pf.StringVar(&configFile, "config", "", "YAML file declaring date columns and sentinel flags")
}

// loadConfigFile merges the optional YAML config; flag defaults otherwise.
func loadConfigFile() error {
	if configFile == "" {
		return nil
	}
	return cfg.LoadFromFile(configFile)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
