package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/shiftops/internal/ports/primary"
	"github.com/example/shiftops/internal/wire"
)

// InventoryCmd returns the inventory command group.
func InventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage the spares inventory",
	}

	cmd.AddCommand(inventoryLoadCmd())
	cmd.AddCommand(inventorySetCmd())
	cmd.AddCommand(inventoryListCmd())
	cmd.AddCommand(inventoryLowCmd())
	cmd.AddCommand(inventoryAdjustCmd())

	return cmd
}

func inventoryLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Replace the inventory from the spares catalog CSV",
		Long: `Wipe the inventory table and reload it from the spares catalog. Stock
levels seed from the configured defaults; duplicate part numbers resolve
last-one-wins.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := wire.InventoryService().LoadFromCatalog(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("✓ Loaded %d part(s)", result.Loaded)
			if result.Duplicates > 0 {
				fmt.Printf(", %d duplicate(s) replaced", result.Duplicates)
			}
			if result.Skipped > 0 {
				fmt.Printf(", %d row(s) skipped", result.Skipped)
			}
			fmt.Println()
			return nil
		},
	}
}

func inventorySetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [file]",
		Short: "Overwrite the inventory from a full CSV export",
		Long: `Replace the whole inventory table with the rows of a CSV file of the form:
part,description,location,category,stock,min. Unlike load, stock levels come
from the file, not the configured defaults.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := readInventoryCSV(args[0])
			if err != nil {
				return err
			}

			if err := wire.InventoryService().SetItems(cmd.Context(), items); err != nil {
				return err
			}
			fmt.Printf("✓ Inventory replaced with %d part(s)\n", len(items))
			return nil
		},
	}
}

func readInventoryCSV(path string) ([]*primary.InventoryItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse inventory file: %w", err)
	}

	var items []*primary.InventoryItem
	for i, row := range rows {
		if len(row) < 6 {
			return nil, fmt.Errorf("line %d: expected part,description,location,category,stock,min", i+1)
		}
		// Skip a header row if present.
		if i == 0 && strings.EqualFold(strings.TrimSpace(row[4]), "stock") {
			continue
		}
		stock, err := strconv.Atoi(strings.TrimSpace(row[4]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid stock level %q", i+1, row[4])
		}
		min, err := strconv.Atoi(strings.TrimSpace(row[5]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid minimum stock level %q", i+1, row[5])
		}
		items = append(items, &primary.InventoryItem{
			PartNumber:    strings.TrimSpace(row[0]),
			Description:   strings.TrimSpace(row[1]),
			Location:      strings.TrimSpace(row[2]),
			Category:      strings.TrimSpace(row[3]),
			StockLevel:    stock,
			MinStockLevel: min,
		})
	}
	return items, nil
}

func inventoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all inventory rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := wire.InventoryService().List(cmd.Context())
			if err != nil {
				return err
			}
			printInventory(items)
			return nil
		},
	}
}

func inventoryLowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "low",
		Short: "List parts at or below their minimum stock level",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := wire.InventoryService().LowStock(cmd.Context())
			if err != nil {
				return err
			}

			if len(items) == 0 {
				fmt.Println("No parts below minimum stock")
				return nil
			}
			printInventory(items)
			return nil
		},
	}
}

func printInventory(items []*primary.InventoryItem) {
	if len(items) == 0 {
		fmt.Println("Inventory is empty")
		return
	}

	fmt.Printf("\n%-12s %-30s %-10s %6s %6s\n", "PART", "DESCRIPTION", "LOCATION", "STOCK", "MIN")
	fmt.Println("────────────────────────────────────────────────────────────────────")
	for _, item := range items {
		stock := fmt.Sprintf("%6d", item.StockLevel)
		if item.StockLevel <= item.MinStockLevel {
			stock = color.New(color.FgRed).Sprintf("%6d", item.StockLevel)
		}
		fmt.Printf("%-12s %-30s %-10s %s %6d\n",
			item.PartNumber, item.Description, item.Location, stock, item.MinStockLevel)
	}
	fmt.Println()
}

func inventoryAdjustCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adjust [part] [delta]",
		Short: "Apply a stock delta to one part",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid delta %q", args[1])
			}

			if err := wire.InventoryService().Adjust(cmd.Context(), args[0], delta); err != nil {
				return err
			}
			fmt.Printf("✓ Adjusted %s by %+d\n", args[0], delta)
			return nil
		},
	}
}
