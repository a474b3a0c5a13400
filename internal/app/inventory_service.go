package app

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/example/shiftops/internal/config"
	"github.com/example/shiftops/internal/ports/primary"
	"github.com/example/shiftops/internal/ports/secondary"
)

// InventoryServiceImpl implements the InventoryService interface.
type InventoryServiceImpl struct {
	inventory secondary.InventoryRepository
	catalog   secondary.SparesCatalogSource
	cfg       *config.Config
	log       *zap.Logger
}

// NewInventoryService creates a new InventoryService with injected dependencies.
func NewInventoryService(
	inventory secondary.InventoryRepository,
	catalog secondary.SparesCatalogSource,
	cfg *config.Config,
	log *zap.Logger,
) *InventoryServiceImpl {
	return &InventoryServiceImpl{
		inventory: inventory,
		catalog:   catalog,
		cfg:       cfg,
		log:       log,
	}
}

// LoadFromCatalog replaces the inventory from the spares catalog file. Rows
// with a blank or UNKNOWN part number are skipped; stock levels seed from
// the configured defaults.
func (s *InventoryServiceImpl) LoadFromCatalog(ctx context.Context) (*primary.CatalogLoadResult, error) {
	rows, err := s.catalog.Load()
	if err != nil {
		return nil, err
	}

	result := &primary.CatalogLoadResult{}
	var items []*secondary.InventoryItemRecord
	for _, row := range rows {
		if row.PartNumber == "" || strings.EqualFold(row.PartNumber, "UNKNOWN") {
			result.Skipped++
			continue
		}
		items = append(items, &secondary.InventoryItemRecord{
			PartNumber:    row.PartNumber,
			Description:   row.Description,
			Location:      row.Location,
			Category:      row.Category,
			StockLevel:    s.cfg.DefaultStockLevel,
			MinStockLevel: s.cfg.DefaultMinStock,
		})
	}

	loaded, duplicates, err := s.inventory.BulkReplace(ctx, items)
	if err != nil {
		return nil, err
	}
	result.Loaded = loaded
	result.Duplicates = duplicates

	s.log.Info("inventory loaded from catalog",
		zap.Int("loaded", result.Loaded),
		zap.Int("duplicates", result.Duplicates),
		zap.Int("skipped", result.Skipped))

	return result, nil
}

// SetItems overwrites the whole inventory table with the given rows.
func (s *InventoryServiceImpl) SetItems(ctx context.Context, items []*primary.InventoryItem) error {
	records := make([]*secondary.InventoryItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, &secondary.InventoryItemRecord{
			PartNumber:    item.PartNumber,
			Description:   item.Description,
			Location:      item.Location,
			Category:      item.Category,
			StockLevel:    item.StockLevel,
			MinStockLevel: item.MinStockLevel,
		})
	}
	_, _, err := s.inventory.BulkReplace(ctx, records)
	return err
}

// Adjust applies a stock delta to one part. Missing parts are a no-op.
func (s *InventoryServiceImpl) Adjust(ctx context.Context, partNumber string, delta int) error {
	return s.inventory.AdjustStock(ctx, partNumber, delta)
}

// List returns all inventory rows ordered by part number.
func (s *InventoryServiceImpl) List(ctx context.Context) ([]*primary.InventoryItem, error) {
	records, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	return toInventoryItems(records), nil
}

// LowStock returns rows where stock is at or below the minimum level.
func (s *InventoryServiceImpl) LowStock(ctx context.Context) ([]*primary.InventoryItem, error) {
	records, err := s.inventory.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	return toInventoryItems(records), nil
}

func toInventoryItems(records []*secondary.InventoryItemRecord) []*primary.InventoryItem {
	items := make([]*primary.InventoryItem, 0, len(records))
	for _, r := range records {
		items = append(items, &primary.InventoryItem{
			PartNumber:    r.PartNumber,
			Description:   r.Description,
			Location:      r.Location,
			Category:      r.Category,
			StockLevel:    r.StockLevel,
			MinStockLevel: r.MinStockLevel,
		})
	}
	return items
}

var _ primary.InventoryService = (*InventoryServiceImpl)(nil)
