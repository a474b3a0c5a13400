package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/shiftops/internal/adapters/sqlite"
	"github.com/example/shiftops/internal/ports/secondary"
)

func TestInventoryRepository_BulkReplace(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewInventoryRepository(db)
	ctx := context.Background()

	seedInventoryItem(t, db, "ART-OLD", 5, 1)

	items := []*secondary.InventoryItemRecord{
		{PartNumber: "ART-100", Description: "Drive belt", Location: "A1-03", Category: "General", StockLevel: 10, MinStockLevel: 2},
		{PartNumber: "ART-200", Description: "Bearing", Location: "B2-01", Category: "General", StockLevel: 10, MinStockLevel: 2},
	}

	loaded, duplicates, err := repo.BulkReplace(ctx, items)
	if err != nil {
		t.Fatalf("BulkReplace failed: %v", err)
	}
	if loaded != 2 || duplicates != 0 {
		t.Errorf("expected 2 loaded / 0 duplicates, got %d/%d", loaded, duplicates)
	}

	// Full replace: the pre-existing row must be gone.
	if _, err := repo.Get(ctx, "ART-OLD"); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ART-OLD to be wiped, got %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 items, got %d", len(all))
	}
}

func TestInventoryRepository_BulkReplace_DuplicatesLastOneWins(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewInventoryRepository(db)
	ctx := context.Background()

	items := []*secondary.InventoryItemRecord{
		{PartNumber: "ART-100", Description: "First entry", StockLevel: 10, MinStockLevel: 2},
		{PartNumber: "ART-100", Description: "Second entry", StockLevel: 4, MinStockLevel: 1},
	}

	loaded, duplicates, err := repo.BulkReplace(ctx, items)
	if err != nil {
		t.Fatalf("BulkReplace failed: %v", err)
	}
	if loaded != 1 || duplicates != 1 {
		t.Errorf("expected 1 loaded / 1 duplicate, got %d/%d", loaded, duplicates)
	}

	got, err := repo.Get(ctx, "ART-100")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Description != "Second entry" || got.StockLevel != 4 {
		t.Errorf("expected last duplicate to win, got %+v", got)
	}
}

func TestInventoryRepository_AdjustStock(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewInventoryRepository(db)
	ctx := context.Background()

	seedInventoryItem(t, db, "ART-100", 10, 2)

	if err := repo.AdjustStock(ctx, "ART-100", -4); err != nil {
		t.Fatalf("AdjustStock failed: %v", err)
	}

	got, err := repo.Get(ctx, "ART-100")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.StockLevel != 6 {
		t.Errorf("expected stock 6, got %d", got.StockLevel)
	}
}

func TestInventoryRepository_AdjustStock_MissingPartIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewInventoryRepository(db)

	if err := repo.AdjustStock(context.Background(), "ART-MISSING", -1); err != nil {
		t.Errorf("expected no-op for missing part, got %v", err)
	}
}

func TestInventoryRepository_LowStock_BoundaryInclusive(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewInventoryRepository(db)
	ctx := context.Background()

	seedInventoryItem(t, db, "ART-BELOW", 2, 5)
	seedInventoryItem(t, db, "ART-EQUAL", 5, 5)
	seedInventoryItem(t, db, "ART-ABOVE", 6, 5)

	low, err := repo.LowStock(ctx)
	if err != nil {
		t.Fatalf("LowStock failed: %v", err)
	}
	if len(low) != 2 {
		t.Fatalf("expected 2 low-stock items, got %d", len(low))
	}

	parts := map[string]bool{}
	for _, item := range low {
		parts[item.PartNumber] = true
	}
	if !parts["ART-BELOW"] || !parts["ART-EQUAL"] {
		t.Errorf("expected ART-BELOW and ART-EQUAL (boundary inclusive), got %v", parts)
	}
	if parts["ART-ABOVE"] {
		t.Error("ART-ABOVE should not be low stock")
	}
}
