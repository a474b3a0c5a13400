// Package primary defines the primary ports (driving interfaces) for the
// application, and the request/response types the CLI exchanges with them.
package primary

import "context"

// ReportService manages the in-progress shift report draft and the stored
// report history.
type ReportService interface {
	// NewDraft starts a fresh draft, running the carry-over and scheduled
	// PPM imports once. Fails if a draft already exists.
	NewDraft(ctx context.Context, req NewDraftRequest) (*DraftSummary, error)

	// AddReactive appends a reactive task to the draft, computing downtime.
	AddReactive(ctx context.Context, req AddReactiveRequest) (*DraftSummary, error)

	// AddPPM appends a planned maintenance task to the draft.
	AddPPM(ctx context.Context, req AddPPMRequest) (*DraftSummary, error)

	// AddSpare appends a spare usage entry to the draft, resolving catalog
	// fields from inventory when the part number is known.
	AddSpare(ctx context.Context, req AddSpareRequest) (*DraftSummary, error)

	// LoadForEdit fetches a stored report into the draft, marking the
	// session as editing that report instead of creating a new one.
	LoadForEdit(ctx context.Context, reportID int64) (*DraftSummary, error)

	// ShowDraft returns the current draft contents.
	ShowDraft(ctx context.Context) (*Draft, error)

	// DiscardDraft deletes the current draft without saving.
	DiscardDraft(ctx context.Context) error

	// Commit persists the draft atomically, decrements inventory for every
	// spare used on new reports, renders both documents to the archive, and
	// clears the draft. Header+children persistence is the only hard-fail
	// step; document failures are reported in the result.
	Commit(ctx context.Context, req CommitRequest) (*CommitResult, error)

	// GetReport retrieves a stored report with its children.
	GetReport(ctx context.Context, id int64) (*Report, error)

	// ListReports lists stored report headers, newest first.
	ListReports(ctx context.Context, filters ReportFilters) ([]*ReportSummary, error)

	// AssetHistory lists an asset's reactive history across all reports.
	AssetHistory(ctx context.Context, asset string) ([]*AssetEvent, error)
}

// NewDraftRequest carries the header fields collected at shift start.
type NewDraftRequest struct {
	Date           string // YYYY-MM-DD, today when empty
	Shift          string // Day | Night
	Engineer       string
	SecondEngineer string
	TeamMembers    string
}

// AddReactiveRequest carries one unplanned repair entry.
type AddReactiveRequest struct {
	Asset       string
	TimeCalled  string // HH:MM
	TimeBack    string
	Fault       string
	Engineers   int // 0 = derive from second engineer presence
	Description string
	Status      string // defaults to Complete
}

// AddPPMRequest carries one planned maintenance entry.
type AddPPMRequest struct {
	Asset    string
	TaskID   string
	Status   string // defaults to Complete
	Comments string
}

// AddSpareRequest carries one spare usage entry.
type AddSpareRequest struct {
	PartNumber   string
	Description  string
	Location     string
	CategoryCode int
	Quantity     int
	Decision     string
}

// CommitRequest carries the end-of-shift fields collected at submit time.
type CommitRequest struct {
	HandoverNotes string
	RadiosCharged bool
	PhonesWorking bool
	KeysHanded    bool
	SafetyCheck   bool
}

// DraftSummary is the lightweight view returned after draft mutations.
type DraftSummary struct {
	EditingReportID int64 // 0 when creating a new report
	Date            string
	Shift           string
	Engineer        string
	Reactives       int
	PPMs            int
	Spares          int
	CarriedOver     int // reactives imported from previous shifts
	Scheduled       int // PPMs imported from the schedule
}

// Draft is the full in-progress report.
type Draft struct {
	EditingReportID int64
	Date            string
	Shift           string
	Engineer        string
	SecondEngineer  string
	TeamMembers     string
	Reactives       []*ReactiveEntry
	PPMs            []*PPMEntry
	Spares          []*SpareEntry
}

// ReactiveEntry is one reactive task in a draft or stored report.
type ReactiveEntry struct {
	Asset           string
	TimeCalled      string
	TimeBack        string
	Fault           string
	Engineers       int
	Description     string
	DowntimeMinutes float64
	Status          string
}

// PPMEntry is one planned maintenance task.
type PPMEntry struct {
	Asset    string
	TaskID   string
	Status   string
	Comments string
}

// SpareEntry is one spare usage entry.
type SpareEntry struct {
	PartNumber   string
	Description  string
	Location     string
	CategoryCode int
	Quantity     int
	Decision     string
}

// CommitResult reports the outcome of each step of the save pipeline.
type CommitResult struct {
	ReportID      int64
	Created       bool // false when an existing report was updated
	WorkbookPath  string
	PDFPath       string
	WorkbookError string // non-empty when rendering or writing failed
	PDFError      string
}

// Report is a stored report with its children.
type Report struct {
	ID             int64
	Date           string
	Shift          string
	Engineer       string
	SecondEngineer string
	TeamMembers    string
	HandoverNotes  string
	RadiosCharged  bool
	PhonesWorking  bool
	KeysHanded     bool
	SafetyCheck    bool
	SubmittedAt    string
	Reactives      []*ReactiveEntry
	PPMs           []*PPMEntry
	Spares         []*SpareEntry
}

// ReportSummary is a report header row for listing.
type ReportSummary struct {
	ID          int64
	Date        string
	Shift       string
	Engineer    string
	SubmittedAt string
}

// ReportFilters narrows report listings.
type ReportFilters struct {
	Engineer string
	Shift    string
}

// AssetEvent is one row of an asset's reactive history.
type AssetEvent struct {
	Date            string
	Shift           string
	Engineer        string
	Fault           string
	Description     string
	DowntimeMinutes float64
	Status          string
}
