package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/shiftops/internal/cli"
	"github.com/example/shiftops/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "shiftops",
		Short:   "shiftops - shift handover reports for the maintenance team",
		Version: version.String(),
		Long: `shiftops records shift handover reports for industrial maintenance teams.
It tracks reactive repairs, planned maintenance and spares usage through a
shift, then generates the handover workbook and PDF at commit.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.ReportCmd())
	rootCmd.AddCommand(cli.InventoryCmd())
	rootCmd.AddCommand(cli.DashboardCmd())
	rootCmd.AddCommand(cli.MasterdataCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
