package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/shiftops/internal/ports/secondary"
)

func testArchiveHeader() *secondary.ReportHeaderRecord {
	return &secondary.ReportHeaderRecord{
		ID:       3,
		Date:     "2025-03-10",
		Shift:    "Day",
		Engineer: "Chris McGhee",
	}
}

func TestArchive_StoreAndResolve(t *testing.T) {
	archive := NewArchive(t.TempDir())

	paths, err := archive.Store(testArchiveHeader(), []byte("workbook"), []byte("pdf"))
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	wantBase := "ShiftReport_20250310_Day_ChrisMcGhee"
	if filepath.Base(paths.WorkbookPath) != wantBase+".xlsx" {
		t.Errorf("Expected workbook %s.xlsx, got %s", wantBase, filepath.Base(paths.WorkbookPath))
	}
	if filepath.Base(paths.PDFPath) != wantBase+".pdf" {
		t.Errorf("Expected pdf %s.pdf, got %s", wantBase, filepath.Base(paths.PDFPath))
	}

	dir := filepath.Dir(paths.WorkbookPath)
	if filepath.Base(dir) != "03" || filepath.Base(filepath.Dir(dir)) != "2025" {
		t.Errorf("Expected <root>/2025/03 tree, got %s", dir)
	}

	data, err := os.ReadFile(paths.WorkbookPath)
	if err != nil {
		t.Fatalf("Failed to read stored workbook: %v", err)
	}
	if string(data) != "workbook" {
		t.Errorf("Expected workbook contents, got %q", data)
	}

	resolved := archive.Resolve(testArchiveHeader())
	if resolved.WorkbookPath != paths.WorkbookPath {
		t.Errorf("Resolve path mismatch: %s vs %s", resolved.WorkbookPath, paths.WorkbookPath)
	}
	if !resolved.WorkbookExists || !resolved.PDFExists {
		t.Error("Expected both documents to exist after Store")
	}
}

func TestArchive_StoreOverwritesSameDateShiftEngineer(t *testing.T) {
	archive := NewArchive(t.TempDir())

	if _, err := archive.Store(testArchiveHeader(), []byte("first"), []byte("pdf")); err != nil {
		t.Fatalf("First Store failed: %v", err)
	}
	paths, err := archive.Store(testArchiveHeader(), []byte("second"), []byte("pdf"))
	if err != nil {
		t.Fatalf("Second Store failed: %v", err)
	}

	data, err := os.ReadFile(paths.WorkbookPath)
	if err != nil {
		t.Fatalf("Failed to read stored workbook: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("Expected second write to win, got %q", data)
	}
}

func TestArchive_StoreSkipsNilDocument(t *testing.T) {
	archive := NewArchive(t.TempDir())

	paths, err := archive.Store(testArchiveHeader(), []byte("workbook"), nil)
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if !paths.WorkbookExists {
		t.Error("Expected workbook to exist")
	}
	if paths.PDFExists {
		t.Error("Expected pdf to be absent when nil bytes are given")
	}
}

func TestArchive_ResolveMissingReport(t *testing.T) {
	archive := NewArchive(t.TempDir())

	paths := archive.Resolve(testArchiveHeader())
	if paths.WorkbookExists || paths.PDFExists {
		t.Error("Expected no documents for an unstored report")
	}
}
