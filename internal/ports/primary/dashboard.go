package primary

import "context"

// DashboardService computes the read-only reporting views from the store.
type DashboardService interface {
	// Overview returns the fleet-wide downtime and availability summary.
	Overview(ctx context.Context) (*Overview, error)

	// AssetReliability returns reliability metrics for one asset, or for
	// all assets combined when asset is empty.
	AssetReliability(ctx context.Context, asset string) (*Reliability, error)

	// Browse lists stored reports with their resolved document pair.
	Browse(ctx context.Context, filters ReportFilters) ([]*BrowseRow, error)
}

// Overview is the fleet-wide summary.
type Overview struct {
	ReportCount    int
	ReactiveCount  int
	DowntimeHours  float64
	Availability   float64 // percent, against ReportCount x shift-length hours
	FaultBreakdown []FaultCount
}

// FaultCount is one fault category with its occurrence count.
type FaultCount struct {
	Fault string
	Count int
}

// Reliability holds per-asset failure metrics.
type Reliability struct {
	Asset          string // empty = all assets
	BreakdownCount int
	MTTRMinutes    float64
	MTBFDays       float64
	MTBFAvailable  bool // false when fewer than two dated records exist
	EstimatedCost  float64
	Events         []*AssetEvent
}

// BrowseRow is one report in the browser with its document pair.
type BrowseRow struct {
	ID             int64
	Date           string
	Shift          string
	Engineer       string
	HandoverNotes  string
	RadiosCharged  bool
	PhonesWorking  bool
	KeysHanded     bool
	SafetyCheck    bool
	WorkbookPath   string
	PDFPath        string
	WorkbookExists bool
	PDFExists      bool
}
