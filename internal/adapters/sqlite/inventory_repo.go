package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/shiftops/internal/ports/secondary"
)

// InventoryRepository implements secondary.InventoryRepository with SQLite.
type InventoryRepository struct {
	db *sql.DB
}

// NewInventoryRepository creates a new SQLite inventory repository.
func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

const inventorySelectCols = "art_number, description, location, category, stock_level, min_stock_level"

// scanInventoryItem scans an inventory row into an InventoryItemRecord.
func scanInventoryItem(scanner interface {
	Scan(dest ...any) error
}) (*secondary.InventoryItemRecord, error) {
	var desc, loc, category sql.NullString

	record := &secondary.InventoryItemRecord{}
	err := scanner.Scan(&record.PartNumber, &desc, &loc, &category, &record.StockLevel, &record.MinStockLevel)
	if err != nil {
		return nil, err
	}

	record.Description = desc.String
	record.Location = loc.String
	record.Category = category.String

	return record, nil
}

// BulkReplace wipes the inventory table and inserts the given items.
// Duplicate part numbers resolve last-one-wins via INSERT OR REPLACE.
func (r *InventoryRepository) BulkReplace(ctx context.Context, items []*secondary.InventoryItemRecord) (int, int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM spares_inventory"); err != nil {
		tx.Rollback()
		return 0, 0, fmt.Errorf("failed to clear inventory: %w", err)
	}

	loaded := 0
	duplicates := 0
	seen := make(map[string]bool, len(items))

	for _, item := range items {
		if seen[item.PartNumber] {
			duplicates++
		} else {
			seen[item.PartNumber] = true
			loaded++
		}

		_, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO spares_inventory (art_number, description, location, category, stock_level, min_stock_level)
			VALUES (?, ?, ?, ?, ?, ?)
		`, item.PartNumber, nullable(item.Description), nullable(item.Location),
			nullable(item.Category), item.StockLevel, item.MinStockLevel)
		if err != nil {
			tx.Rollback()
			return 0, 0, fmt.Errorf("failed to insert inventory item %s: %w", item.PartNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit inventory replace: %w", err)
	}
	return loaded, duplicates, nil
}

// AdjustStock applies a delta to a part's stock level. A missing part number
// is a no-op, not an error.
func (r *InventoryRepository) AdjustStock(ctx context.Context, partNumber string, delta int) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE spares_inventory SET stock_level = stock_level + ? WHERE art_number = ?",
		delta, partNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to adjust stock for %s: %w", partNumber, err)
	}
	return nil
}

// Get retrieves a single inventory item by part number.
func (r *InventoryRepository) Get(ctx context.Context, partNumber string) (*secondary.InventoryItemRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+inventorySelectCols+" FROM spares_inventory WHERE art_number = ?",
		partNumber,
	)

	record, err := scanInventoryItem(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("part %s: %w", partNumber, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}

	return record, nil
}

// List retrieves all inventory items ordered by part number.
func (r *InventoryRepository) List(ctx context.Context) ([]*secondary.InventoryItemRecord, error) {
	return r.queryItems(ctx, "SELECT "+inventorySelectCols+" FROM spares_inventory ORDER BY art_number ASC")
}

// LowStock retrieves items where stock_level <= min_stock_level.
func (r *InventoryRepository) LowStock(ctx context.Context) ([]*secondary.InventoryItemRecord, error) {
	return r.queryItems(ctx,
		"SELECT "+inventorySelectCols+" FROM spares_inventory WHERE stock_level <= min_stock_level ORDER BY art_number ASC",
	)
}

func (r *InventoryRepository) queryItems(ctx context.Context, query string, args ...any) ([]*secondary.InventoryItemRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	var items []*secondary.InventoryItemRecord
	for rows.Next() {
		record, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, record)
	}

	return items, nil
}

// Ensure InventoryRepository implements the interface
var _ secondary.InventoryRepository = (*InventoryRepository)(nil)
