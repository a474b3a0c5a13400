package masterdata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/shiftops/internal/ports/secondary"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestAssetSource_ReadsFirstColumn(t *testing.T) {
	path := writeCSV(t, "assets.csv", "Asset,Zone\nConveyor B3,North\nSorter 1,South\n\n")

	assets, err := NewAssetSource(path).Assets()
	if err != nil {
		t.Fatalf("Assets failed: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("Expected 2 assets, got %d: %v", len(assets), assets)
	}
	if assets[0] != "Conveyor B3" || assets[1] != "Sorter 1" {
		t.Errorf("Unexpected assets: %v", assets)
	}
}

func TestAssetSource_MissingFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.csv")

	assets, err := NewAssetSource(path).Assets()
	if err != nil {
		t.Fatalf("Assets failed: %v", err)
	}
	if len(assets) == 0 {
		t.Fatal("Expected built-in default assets")
	}
}

func TestSparesCatalogSource_HeaderVariants(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"canonical", "Part Number,Description,Location,Category"},
		{"warehouse export", "ART #,DESC,LOC,CAT"},
		{"mixed case", "art number,description,location,category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, "spares.csv", tt.header+"\nART-100,Drive belt,A1-03,Belts\n")

			items, err := NewSparesCatalogSource(path).Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if len(items) != 1 {
				t.Fatalf("Expected 1 item, got %d", len(items))
			}
			item := items[0]
			if item.PartNumber != "ART-100" || item.Description != "Drive belt" ||
				item.Location != "A1-03" || item.Category != "Belts" {
				t.Errorf("Unexpected item: %+v", item)
			}
		})
	}
}

func TestSparesCatalogSource_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spares.csv")

	_, err := NewSparesCatalogSource(path).Load()
	if !errors.Is(err, secondary.ErrDataSourceMissing) {
		t.Errorf("Expected ErrDataSourceMissing, got %v", err)
	}
}

func TestSparesCatalogSource_NoPartColumn(t *testing.T) {
	path := writeCSV(t, "spares.csv", "Name,Qty\nBelt,3\n")

	_, err := NewSparesCatalogSource(path).Load()
	if err == nil {
		t.Error("Expected error for catalog without a part number column")
	}
}

func TestPPMScheduleSource_FiltersByWeekday(t *testing.T) {
	content := "Asset,Day,Task Description\n" +
		"Sorter 1,Monday,Weekly lube\n" +
		"Conveyor B3,daily,Belt inspection\n" +
		"Palletiser,Friday,Hydraulic check\n" +
		",Monday,Orphan row\n"
	path := writeCSV(t, "ppm_schedule.csv", content)

	tasks, err := NewPPMScheduleSource(path).TasksForDay(time.Monday)
	if err != nil {
		t.Fatalf("TasksForDay failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks for Monday, got %d", len(tasks))
	}
	if tasks[0].Asset != "Sorter 1" || tasks[0].Description != "Weekly lube" {
		t.Errorf("Unexpected first task: %+v", tasks[0])
	}
	if tasks[1].Asset != "Conveyor B3" {
		t.Errorf("Expected daily row to match every weekday, got %+v", tasks[1])
	}
}

func TestPPMScheduleSource_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ppm_schedule.csv")

	_, err := NewPPMScheduleSource(path).TasksForDay(time.Monday)
	if !errors.Is(err, secondary.ErrDataSourceMissing) {
		t.Errorf("Expected ErrDataSourceMissing, got %v", err)
	}
}
