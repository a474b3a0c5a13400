// Package filesystem stores generated report documents in a year/month
// directory tree and resolves them back by naming convention alone.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/shiftops/internal/ports/secondary"
)

// Archive writes document pairs under <root>/<YYYY>/<MM>/ using the
// ShiftReport_<YYYYMMDD>_<Shift>_<Engineer> filename convention. The
// database never stores these paths; they are always derived.
type Archive struct {
	root string
}

// NewArchive creates an archive rooted at the given reports directory.
func NewArchive(root string) *Archive {
	return &Archive{root: root}
}

// Store writes both documents for the report and returns their paths.
// A nil byte slice skips that document, leaving any previous file alone.
func (a *Archive) Store(header *secondary.ReportHeaderRecord, workbook, pdf []byte) (*secondary.ArtifactPaths, error) {
	paths := a.Resolve(header)

	dir := filepath.Dir(paths.WorkbookPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}

	if workbook != nil {
		if err := os.WriteFile(paths.WorkbookPath, workbook, 0644); err != nil {
			return nil, fmt.Errorf("failed to write workbook: %w", err)
		}
		paths.WorkbookExists = true
	}
	if pdf != nil {
		if err := os.WriteFile(paths.PDFPath, pdf, 0644); err != nil {
			return nil, fmt.Errorf("failed to write pdf: %w", err)
		}
		paths.PDFExists = true
	}

	return paths, nil
}

// Resolve returns the conventional paths for a report's documents, with
// existence flags set from the filesystem.
func (a *Archive) Resolve(header *secondary.ReportHeaderRecord) *secondary.ArtifactPaths {
	base := baseName(header)
	dir := filepath.Join(a.root, yearPart(header.Date), monthPart(header.Date))

	paths := &secondary.ArtifactPaths{
		WorkbookPath: filepath.Join(dir, base+".xlsx"),
		PDFPath:      filepath.Join(dir, base+".pdf"),
	}
	paths.WorkbookExists = fileExists(paths.WorkbookPath)
	paths.PDFExists = fileExists(paths.PDFPath)
	return paths
}

// baseName builds ShiftReport_<YYYYMMDD>_<Shift>_<Engineer> with spaces
// stripped from the engineer name.
func baseName(header *secondary.ReportHeaderRecord) string {
	compactDate := strings.ReplaceAll(header.Date, "-", "")
	engineer := strings.ReplaceAll(header.Engineer, " ", "")
	return fmt.Sprintf("ShiftReport_%s_%s_%s", compactDate, header.Shift, engineer)
}

func yearPart(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return date
}

func monthPart(date string) string {
	if len(date) >= 7 {
		return date[5:7]
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

var _ secondary.ReportArchive = (*Archive)(nil)
