// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a report id does not resolve to a stored report.
var ErrNotFound = errors.New("not found")

// ErrDataSourceMissing is returned when a master-data file is absent. Callers
// fall back to built-in defaults instead of failing.
var ErrDataSourceMissing = errors.New("data source missing")

// ReportRepository defines the secondary port for shift report persistence.
type ReportRepository interface {
	// Create persists a new report header and returns its generated id.
	Create(ctx context.Context, header *ReportHeaderRecord) (int64, error)

	// UpdateHeader replaces the header fields of an existing report.
	UpdateHeader(ctx context.Context, id int64, header *ReportHeaderRecord) error

	// ReplaceChildren deletes all child rows for the report and inserts the
	// given sets in a single transaction. Not a diff or merge.
	ReplaceChildren(ctx context.Context, reportID int64, reactives []*ReactiveRecord, ppms []*PPMRecord, spares []*SpareUsageRecord) error

	// Save persists the whole aggregate atomically: header (created or
	// updated depending on aggregate.Header.ID), child replacement, and
	// inventory decrements for every spare used. Returns the report id.
	Save(ctx context.Context, aggregate *ReportAggregate) (int64, error)

	// GetByID retrieves a report header by its id.
	GetByID(ctx context.Context, id int64) (*ReportHeaderRecord, error)

	// GetChildren retrieves all child rows for a report.
	GetChildren(ctx context.Context, reportID int64) ([]*ReactiveRecord, []*PPMRecord, []*SpareUsageRecord, error)

	// List retrieves report headers matching the given filters, newest first.
	List(ctx context.Context, filters ReportFilters) ([]*ReportHeaderRecord, error)

	// OpenReactives retrieves reactive tasks whose status is not Complete,
	// across all historical reports, for carry-over into a new shift.
	OpenReactives(ctx context.Context) ([]*ReactiveRecord, error)

	// ReactiveHistoryByAsset retrieves an asset's reactive history joined
	// with the owning report's date, shift and engineer, newest first.
	ReactiveHistoryByAsset(ctx context.Context, asset string) ([]*AssetEventRecord, error)
}

// InventoryRepository defines the secondary port for the spares inventory.
type InventoryRepository interface {
	// BulkReplace wipes the inventory table and inserts the given items.
	// Duplicate part numbers resolve last-one-wins; the replaced-duplicate
	// count is returned alongside the loaded count.
	BulkReplace(ctx context.Context, items []*InventoryItemRecord) (loaded, duplicates int, err error)

	// AdjustStock applies a delta to a part's stock level. A missing part
	// number is a no-op, not an error.
	AdjustStock(ctx context.Context, partNumber string, delta int) error

	// Get retrieves a single inventory item by part number.
	Get(ctx context.Context, partNumber string) (*InventoryItemRecord, error)

	// List retrieves all inventory items ordered by part number.
	List(ctx context.Context) ([]*InventoryItemRecord, error)

	// LowStock retrieves items where stock_level <= min_stock_level.
	LowStock(ctx context.Context) ([]*InventoryItemRecord, error)
}

// ReportHeaderRecord represents a shift report header as stored in persistence.
type ReportHeaderRecord struct {
	ID             int64
	Date           string // YYYY-MM-DD
	Shift          string // Day | Night
	Engineer       string
	SecondEngineer string
	TeamMembers    string
	HandoverNotes  string
	RadiosCharged  bool
	PhonesWorking  bool
	KeysHanded     bool
	SafetyCheck    bool
	SubmittedAt    string
}

// ReactiveRecord represents an unplanned repair task as stored in persistence.
type ReactiveRecord struct {
	ID              int64
	ReportID        int64
	Asset           string
	TimeCalled      string // HH:MM wall clock
	TimeBack        string
	Fault           string
	Engineers       int
	Description     string
	DowntimeMinutes float64
	Status          string
}

// PPMRecord represents a planned maintenance task as stored in persistence.
type PPMRecord struct {
	ID       int64
	ReportID int64
	Asset    string
	TaskID   string
	Status   string
	Comments string
}

// SpareUsageRecord represents spare-part consumption as stored in persistence.
type SpareUsageRecord struct {
	ID           int64
	ReportID     int64
	PartNumber   string
	Description  string
	Location     string
	CategoryCode int
	Quantity     int
	Decision     string
}

// InventoryItemRecord represents a spares inventory row.
type InventoryItemRecord struct {
	PartNumber    string
	Description   string
	Location      string
	Category      string
	StockLevel    int
	MinStockLevel int
}

// AssetEventRecord is a reactive task joined with its report context.
type AssetEventRecord struct {
	Date            string
	Shift           string
	Engineer        string
	Asset           string
	Fault           string
	Description     string
	DowntimeMinutes float64
	Status          string
}

// ReportFilters contains filter options for querying reports.
type ReportFilters struct {
	Engineer string
	Shift    string
}

// ReportAggregate is a report header together with its three child lists.
// Both document renderers and the atomic save consume this shape.
type ReportAggregate struct {
	Header    ReportHeaderRecord
	Reactives []*ReactiveRecord
	PPMs      []*PPMRecord
	Spares    []*SpareUsageRecord

	// DecrementInventory applies stock decrements for spares during Save.
	// Edits of existing reports leave inventory untouched.
	DecrementInventory bool
}
