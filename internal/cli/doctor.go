package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/shiftops/internal/db"
	"github.com/example/shiftops/internal/wire"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the data directory, database and master data",
		Long: `Health check for the shiftops environment.

Validates:
- Data directory and reports tree
- Database reachability and schema
- Master-data file presence (assets, spares catalog, PPM schedule)

Examples:
  shiftops doctor          # Run full health check
  shiftops doctor --quiet  # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkDataDir(),
				checkDatabase(),
				checkMasterData("asset register", wire.Config().AssetsPath(), "built-in defaults apply"),
				checkMasterData("spares catalog", wire.Config().SparesCatalogPath(), "inventory load unavailable"),
				checkMasterData("ppm schedule", wire.Config().PPMSchedulePath(), "scheduled PPM import skipped"),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
				}
				if quiet {
					continue
				}
				icon := r.Status
				switch r.Status {
				case "✓":
					icon = color.New(color.FgGreen).Sprint(r.Status)
				case "⚠":
					icon = color.New(color.FgYellow).Sprint(r.Status)
				case "✗":
					icon = color.New(color.FgRed).Sprint(r.Status)
				}
				fmt.Printf("%s %s\n", icon, r.Name)
				if r.Status != "✓" && r.Details != "" {
					fmt.Printf("    %s\n", r.Details)
				}
			}

			if hasErrors {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "Exit code only, no output")

	return cmd
}

func checkDataDir() CheckResult {
	dir := wire.Config().DataDir
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return CheckResult{
			Name:    "data directory",
			Status:  "✗",
			Details: fmt.Sprintf("%s missing, run: shiftops init", dir),
		}
	}
	return CheckResult{Name: "data directory", Status: "✓"}
}

func checkDatabase() CheckResult {
	wire.Config()
	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "database", Status: "✗", Details: err.Error()}
	}

	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM reports").Scan(&count); err != nil {
		return CheckResult{Name: "database", Status: "✗", Details: err.Error()}
	}
	return CheckResult{Name: fmt.Sprintf("database (%d reports)", count), Status: "✓"}
}

func checkMasterData(name, path, consequence string) CheckResult {
	if _, err := os.Stat(path); err != nil {
		return CheckResult{
			Name:    name,
			Status:  "⚠",
			Details: fmt.Sprintf("%s missing, %s", path, consequence),
		}
	}
	return CheckResult{Name: name, Status: "✓"}
}
