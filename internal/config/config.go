package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for punchlog, stored as JSON in
// ~/.config/punchlog/config.json.
type Config struct {
	Sheets SheetsConfig `json:"sheets"`
}

// SheetsConfig holds Google Sheets append settings.
type SheetsConfig struct {
	// SpreadsheetID is the target spreadsheet document ID.
	SpreadsheetID string `json:"spreadsheet_id"`
	// Range is the A1-notation range rows are appended to.
	Range string `json:"range"`
	// ClientID is the OAuth2 client ID for the device code flow.
	ClientID string `json:"client_id"`
	// ClientSecret is the OAuth2 client secret issued alongside the
	// client ID for limited-input devices.
	ClientSecret string `json:"client_secret"`
}

// DefaultRange is used when no range is configured.
const DefaultRange = "Timesheet!A:J"

func defaultConfig() Config {
	return Config{
		Sheets: SheetsConfig{
			Range: DefaultRange,
		},
	}
}

// Load reads the config file at path, returning defaults when the file
// does not exist yet.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := defaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Sheets.Range == "" {
		cfg.Sheets.Range = DefaultRange
	}
	return cfg, nil
}

// Save writes the config as indented JSON, creating the directory if
// needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate reports whether the config is complete enough to append rows.
func (c Config) Validate() error {
	if c.Sheets.SpreadsheetID == "" {
		return errors.New("spreadsheet ID is not configured, run 'punchlog init'")
	}
	if c.Sheets.ClientID == "" {
		return errors.New("OAuth client ID is not configured, run 'punchlog init'")
	}
	return nil
}
