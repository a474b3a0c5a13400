package masterdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/example/shiftops/internal/ports/secondary"
)

// SparesCatalogSource reads the spares catalog CSV. Warehouse exports vary in
// their header spelling, so columns are matched loosely by name.
type SparesCatalogSource struct {
	path string
}

// NewSparesCatalogSource creates a catalog source backed by the given CSV path.
func NewSparesCatalogSource(path string) *SparesCatalogSource {
	return &SparesCatalogSource{path: path}
}

// Load reads every catalog row. Rows are returned as-is with fields trimmed;
// filtering and stock seeding are the caller's concern.
func (s *SparesCatalogSource) Load() ([]*secondary.InventoryItemRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("spares catalog %s: %w", s.path, secondary.ErrDataSourceMissing)
		}
		return nil, fmt.Errorf("failed to open spares catalog: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse spares catalog: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols, err := mapCatalogColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var items []*secondary.InventoryItemRecord
	for _, row := range rows[1:] {
		items = append(items, &secondary.InventoryItemRecord{
			PartNumber:  fieldAt(row, cols.part),
			Description: fieldAt(row, cols.description),
			Location:    fieldAt(row, cols.location),
			Category:    fieldAt(row, cols.category),
		})
	}
	return items, nil
}

type catalogColumns struct {
	part        int
	description int
	location    int
	category    int
}

// mapCatalogColumns matches header cells loosely: "Part Number", "ART #" and
// "Art Number" all resolve to the part column.
func mapCatalogColumns(header []string) (*catalogColumns, error) {
	cols := &catalogColumns{part: -1, description: -1, location: -1, category: -1}
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		switch {
		case cols.part == -1 && (strings.Contains(name, "part") || strings.Contains(name, "art")):
			cols.part = i
		case cols.description == -1 && strings.Contains(name, "desc"):
			cols.description = i
		case cols.location == -1 && strings.Contains(name, "loc"):
			cols.location = i
		case cols.category == -1 && strings.Contains(name, "cat"):
			cols.category = i
		}
	}
	if cols.part == -1 {
		return nil, fmt.Errorf("spares catalog has no part number column: %v", header)
	}
	return cols, nil
}

func fieldAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

var _ secondary.SparesCatalogSource = (*SparesCatalogSource)(nil)
