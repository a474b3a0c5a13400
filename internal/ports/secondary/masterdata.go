package secondary

import "time"

// ScheduledPPM is one row of the weekday-keyed maintenance schedule.
type ScheduledPPM struct {
	Asset       string
	Description string
}

// AssetSource provides the list of known asset names. Implementations fall
// back to a built-in default list when the master-data file is absent.
type AssetSource interface {
	Assets() ([]string, error)
}

// SparesCatalogSource provides the externally maintained spares catalog used
// to seed or replace the inventory table.
type SparesCatalogSource interface {
	// Load reads the catalog. Returns ErrDataSourceMissing when the file
	// is absent.
	Load() ([]*InventoryItemRecord, error)
}

// PPMScheduleSource provides the scheduled maintenance tasks for a weekday.
type PPMScheduleSource interface {
	// TasksForDay returns rows whose recurrence matches the weekday or is
	// "Daily". Returns ErrDataSourceMissing when the file is absent.
	TasksForDay(day time.Weekday) ([]*ScheduledPPM, error)
}
