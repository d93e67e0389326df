package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte(
		"date_columns:\n"+
			"  - name: data_chegada\n"+
			"    sentinel_expected: true\n"+
			"  - name: data_carregamento\n"+
			"    label: carregamento\n",
	), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.DateColumns) != 2 {
		t.Fatalf("expected 2 date columns, got %d", len(c.DateColumns))
	}
	if !c.DateColumns[0].SentinelExpected {
		t.Error("data_chegada should be sentinel-expected")
	}
	if c.DateColumns[0].Label != "data_chegada" {
		t.Errorf("label should default to name, got %q", c.DateColumns[0].Label)
	}
	if c.DateColumns[1].Label != "carregamento" {
		t.Errorf("explicit label not kept: %q", c.DateColumns[1].Label)
	}
}

func TestLoadFromFile_UnknownColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("date_columns:\n  - name: data_bogus\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for unknown date column")
	}
}

func TestLoadFromFile_EmptyDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("date_columns: []\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.DateColumns) != 3 {
		t.Errorf("expected 3 default date columns, got %d: %v", len(c.DateColumns), c.DateColumns)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
