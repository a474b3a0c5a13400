// Package config loads the tool configuration from a JSON file next to the
// data directory, with sensible defaults when no file exists.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when config.json is absent or leaves fields unset.
const (
	DefaultShiftHours       = 12.0
	DefaultHourlyRate       = 50.0
	DefaultStockLevel       = 10
	DefaultMinStockLevel    = 2
	DefaultDataDirName      = "data"
	DefaultLogLevel         = "info"
	DefaultReportsSubdir    = "reports"
	DefaultAssetsFileName   = "assets.csv"
	DefaultSparesFileName   = "spares.csv"
	DefaultScheduleFileName = "ppm_schedule.csv"
	DefaultDraftFileName    = "draft.json"
)

// Config represents the flat shiftops configuration.
type Config struct {
	DataDir           string   `json:"data_dir"`
	ShiftHours        float64  `json:"shift_hours"`          // nominal shift length for availability
	HourlyRate        float64  `json:"hourly_rate"`          // engineer cost per hour in GBP
	Engineers         []string `json:"engineers,omitempty"`  // known engineer roster
	DefaultStockLevel int      `json:"default_stock_level"`  // applied when seeding inventory from CSV
	DefaultMinStock   int      `json:"default_min_stock"`    // low-stock threshold for seeded items
	LogLevel          string   `json:"log_level"`
}

// Load reads config.json from the given directory. A missing file yields the
// default configuration; a malformed file is an error.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(dir), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default(dir)
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults(dir)

	return cfg, nil
}

// Save writes config.json to the given directory.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Default returns the configuration used when no file exists.
func Default(dir string) *Config {
	cfg := &Config{}
	cfg.applyDefaults(dir)
	return cfg
}

func (c *Config) applyDefaults(dir string) {
	if c.DataDir == "" {
		c.DataDir = filepath.Join(dir, DefaultDataDirName)
	}
	if c.ShiftHours <= 0 {
		c.ShiftHours = DefaultShiftHours
	}
	if c.HourlyRate <= 0 {
		c.HourlyRate = DefaultHourlyRate
	}
	if c.DefaultStockLevel <= 0 {
		c.DefaultStockLevel = DefaultStockLevel
	}
	if c.DefaultMinStock <= 0 {
		c.DefaultMinStock = DefaultMinStockLevel
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// ReportsDir returns the root of the generated-document tree.
func (c *Config) ReportsDir() string {
	return filepath.Join(c.DataDir, DefaultReportsSubdir)
}

// AssetsPath returns the asset register CSV location.
func (c *Config) AssetsPath() string {
	return filepath.Join(c.DataDir, DefaultAssetsFileName)
}

// SparesCatalogPath returns the spares catalog CSV location.
func (c *Config) SparesCatalogPath() string {
	return filepath.Join(c.DataDir, DefaultSparesFileName)
}

// PPMSchedulePath returns the maintenance schedule CSV location.
func (c *Config) PPMSchedulePath() string {
	return filepath.Join(c.DataDir, DefaultScheduleFileName)
}

// DraftPath returns the location of the in-progress report draft.
func (c *Config) DraftPath() string {
	return filepath.Join(c.DataDir, DefaultDraftFileName)
}
