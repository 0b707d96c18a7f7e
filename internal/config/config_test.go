package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Sheets.Range != DefaultRange {
		t.Errorf("default range = %q, want %q", cfg.Sheets.Range, DefaultRange)
	}
	if cfg.Sheets.SpreadsheetID != "" {
		t.Errorf("default spreadsheet ID should be empty, got %q", cfg.Sheets.SpreadsheetID)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	want := Config{
		Sheets: SheetsConfig{
			SpreadsheetID: "abc123",
			Range:         "Entries!A:J",
			ClientID:      "client.apps.example.com",
			ClientSecret:  "secret",
		},
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoad_EmptyRangeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := Save(path, Config{Sheets: SheetsConfig{SpreadsheetID: "x"}}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Sheets.Range != DefaultRange {
		t.Errorf("range = %q, want fallback %q", cfg.Sheets.Range, DefaultRange)
	}
}

func TestValidate(t *testing.T) {
	var cfg Config
	if err := cfg.Validate(); err == nil {
		t.Error("empty config should not validate")
	}
	cfg.Sheets.SpreadsheetID = "abc"
	if err := cfg.Validate(); err == nil {
		t.Error("config without client ID should not validate")
	}
	cfg.Sheets.ClientID = "client"
	if err := cfg.Validate(); err != nil {
		t.Errorf("complete config failed validation: %v", err)
	}
}
