package secondary

import "time"

// WorkbookRenderer renders a report aggregate as a spreadsheet workbook.
// Renderers are pure functions of the aggregate: for the same input and
// generation timestamp the output bytes are deterministic.
type WorkbookRenderer interface {
	Render(aggregate *ReportAggregate, generatedAt time.Time) ([]byte, error)
}

// PDFRenderer renders a report aggregate as a paginated document.
type PDFRenderer interface {
	Render(aggregate *ReportAggregate, generatedAt time.Time) ([]byte, error)
}

// ArtifactPaths locates the generated document pair for a report. Paths are
// derived from the naming convention, never stored in the database.
type ArtifactPaths struct {
	WorkbookPath   string
	PDFPath        string
	WorkbookExists bool
	PDFExists      bool
}

// ReportArchive persists generated documents to the year/month directory tree
// and resolves them back by naming convention.
type ReportArchive interface {
	// Store writes both documents for the report and returns their paths.
	Store(header *ReportHeaderRecord, workbook, pdf []byte) (*ArtifactPaths, error)

	// Resolve returns the conventional paths for a report's documents,
	// with existence flags set from the filesystem.
	Resolve(header *ReportHeaderRecord) *ArtifactPaths
}
