package primary

import "context"

// InventoryService manages the shared spares inventory.
type InventoryService interface {
	// LoadFromCatalog replaces the inventory from the spares catalog file,
	// seeding stock levels with the configured defaults.
	LoadFromCatalog(ctx context.Context) (*CatalogLoadResult, error)

	// SetItems overwrites the whole inventory table with the given rows
	// (the manager table-edit view).
	SetItems(ctx context.Context, items []*InventoryItem) error

	// Adjust applies a stock delta to one part. Missing parts are a no-op.
	Adjust(ctx context.Context, partNumber string, delta int) error

	// List returns all inventory rows ordered by part number.
	List(ctx context.Context) ([]*InventoryItem, error)

	// LowStock returns rows where stock is at or below the minimum level.
	LowStock(ctx context.Context) ([]*InventoryItem, error)
}

// InventoryItem is one spares inventory row.
type InventoryItem struct {
	PartNumber    string
	Description   string
	Location      string
	Category      string
	StockLevel    int
	MinStockLevel int
}

// CatalogLoadResult reports a catalog import: rows loaded, duplicate part
// numbers resolved last-one-wins, and malformed rows skipped.
type CatalogLoadResult struct {
	Loaded     int
	Duplicates int
	Skipped    int
}
