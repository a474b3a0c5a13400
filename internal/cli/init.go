package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/shiftops/internal/config"
	"github.com/example/shiftops/internal/db"
	"github.com/example/shiftops/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the database and data directory",
		Long:  `Create the data directory, write a default config.json if none exists, and initialize the database schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()

			if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
				return fmt.Errorf("failed to create data directory: %w", err)
			}
			fmt.Printf("✓ Data directory at %s\n", cfg.DataDir)

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve working directory: %w", err)
			}
			if _, statErr := os.Stat(filepath.Join(cwd, "config.json")); os.IsNotExist(statErr) {
				if err := config.Save(cwd, cfg); err != nil {
					return fmt.Errorf("failed to write default config: %w", err)
				}
				fmt.Println("✓ Default config.json written")
			}

			fmt.Printf("Initializing database at %s\n", db.GetDBPath())
			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}
			fmt.Println("✓ Database initialized successfully")

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  shiftops inventory load     # seed the spares inventory from spares.csv")
			fmt.Println("  shiftops report new --shift Day --engineer \"Your Name\"")

			return nil
		},
	}
}
