// Package masterdata reads the site-maintained CSV files that feed the data
// entry flows: the asset register, the spares catalog and the PPM schedule.
// Every loader treats a missing file as a soft condition so the tool keeps
// working on a fresh install.
package masterdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/example/shiftops/internal/ports/secondary"
)

// defaultAssets covers the site's core equipment when assets.csv is absent.
var defaultAssets = []string{
	"Conveyor B1",
	"Conveyor B2",
	"Conveyor B3",
	"Sorter 1",
	"Sorter 2",
	"Palletiser",
	"Stretch Wrapper",
	"Dock Leveller 1",
	"Dock Leveller 2",
	"Other",
}

// AssetSource reads asset names from the first column of a CSV file.
type AssetSource struct {
	path string
}

// NewAssetSource creates an asset source backed by the given CSV path.
func NewAssetSource(path string) *AssetSource {
	return &AssetSource{path: path}
}

// Assets returns the asset list from the file, or the built-in defaults when
// the file is absent or empty.
func (s *AssetSource) Assets() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return append([]string(nil), defaultAssets...), nil
		}
		return nil, fmt.Errorf("failed to open asset register: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse asset register: %w", err)
	}

	var assets []string
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		// Skip a header row if present.
		if i == 0 && strings.EqualFold(name, "asset") {
			continue
		}
		assets = append(assets, name)
	}

	if len(assets) == 0 {
		return append([]string(nil), defaultAssets...), nil
	}
	return assets, nil
}

var _ secondary.AssetSource = (*AssetSource)(nil)
