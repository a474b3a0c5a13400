package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataDir != filepath.Join(dir, "data") {
		t.Errorf("Expected default data dir, got %s", cfg.DataDir)
	}
	if cfg.ShiftHours != 12 {
		t.Errorf("Expected 12 shift hours, got %v", cfg.ShiftHours)
	}
	if cfg.HourlyRate != 50 {
		t.Errorf("Expected hourly rate 50, got %v", cfg.HourlyRate)
	}
	if cfg.DefaultStockLevel != 10 || cfg.DefaultMinStock != 2 {
		t.Errorf("Expected stock defaults 10/2, got %d/%d", cfg.DefaultStockLevel, cfg.DefaultMinStock)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.LogLevel)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `{"hourly_rate": 65, "engineers": ["Chris McGhee"]}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HourlyRate != 65 {
		t.Errorf("Expected hourly rate 65, got %v", cfg.HourlyRate)
	}
	if len(cfg.Engineers) != 1 || cfg.Engineers[0] != "Chris McGhee" {
		t.Errorf("Expected engineer roster, got %v", cfg.Engineers)
	}
	if cfg.ShiftHours != 12 {
		t.Errorf("Expected unset fields to keep defaults, got shift hours %v", cfg.ShiftHours)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Expected error for malformed config")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := Default(dir)
	cfg.HourlyRate = 75
	cfg.Engineers = []string{"Chris McGhee", "Dana Fox"}
	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.HourlyRate != 75 {
		t.Errorf("Expected hourly rate 75, got %v", loaded.HourlyRate)
	}
	if len(loaded.Engineers) != 2 {
		t.Errorf("Expected 2 engineers, got %v", loaded.Engineers)
	}
}

func TestDerivedPaths(t *testing.T) {
	cfg := Default("/tmp/site")

	if cfg.ReportsDir() != filepath.Join(cfg.DataDir, "reports") {
		t.Errorf("Unexpected reports dir: %s", cfg.ReportsDir())
	}
	if filepath.Base(cfg.AssetsPath()) != "assets.csv" {
		t.Errorf("Unexpected assets path: %s", cfg.AssetsPath())
	}
	if filepath.Base(cfg.DraftPath()) != "draft.json" {
		t.Errorf("Unexpected draft path: %s", cfg.DraftPath())
	}
}
