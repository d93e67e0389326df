package config

import (
	"fmt"
	"os"

	"tripload/internal/model"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a tripload run.
type Config struct {
	DSN         string
	FilePath    string
	SourceLabel string // identifies the export in logs and error-file names
	LogFormat   string // "text" or "json"
	LogDir      string
	Force       bool
	KeepStaging bool
	DryRun      bool

	// DateColumns declares which export columns hold dates and whether an
	// empty value there is an expected business state. Defaults to
	// model.DefaultDateColumns when no config file overrides it.
	DateColumns []model.DateColumn `yaml:"date_columns"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	DateColumns []struct {
		Name             string `yaml:"name"`
		Label            string `yaml:"label"`
		SentinelExpected bool   `yaml:"sentinel_expected"`
	} `yaml:"date_columns"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.DateColumns = c.DateColumns[:0]
	for _, dc := range yc.DateColumns {
		label := dc.Label
		if label == "" {
			label = dc.Name
		}
		c.DateColumns = append(c.DateColumns, model.DateColumn{
			Name:             dc.Name,
			Label:            label,
			SentinelExpected: dc.SentinelExpected,
		})
	}
	return c.validateDateColumns()
}

// validateDateColumns checks that every declared date column is a known
// export column. If none are declared, it defaults to DefaultDateColumns.
func (c *Config) validateDateColumns() error {
	if len(c.DateColumns) == 0 {
		c.DateColumns = append([]model.DateColumn(nil), model.DefaultDateColumns...)
		return nil
	}
	known := make(map[string]bool)
	for _, col := range model.Columns() {
		known[col] = true
	}
	for _, dc := range c.DateColumns {
		if !known[dc.Name] {
			return fmt.Errorf("unknown date column %q in config", dc.Name)
		}
	}
	return nil
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	if len(c.DateColumns) == 0 {
		c.DateColumns = append([]model.DateColumn(nil), model.DefaultDateColumns...)
	}
	return nil
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATABASE_URL is required")
	}
	return nil
}
