package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/shiftops/internal/ports/primary"
	"github.com/example/shiftops/internal/wire"
)

// DashboardCmd returns the dashboard command group.
func DashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Reporting views over the stored shift history",
	}

	cmd.AddCommand(dashboardOverviewCmd())
	cmd.AddCommand(dashboardReliabilityCmd())
	cmd.AddCommand(dashboardBrowseCmd())

	return cmd
}

func dashboardOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Fleet-wide downtime and availability summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			overview, err := wire.DashboardService().Overview(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("\nReports:        %d\n", overview.ReportCount)
			fmt.Printf("Reactive tasks: %d\n", overview.ReactiveCount)
			fmt.Printf("Downtime:       %.1f h\n", overview.DowntimeHours)
			fmt.Printf("Availability:   %s\n", availabilityColored(overview.Availability))

			if len(overview.FaultBreakdown) > 0 {
				fmt.Println("\nFault breakdown:")
				for _, fc := range overview.FaultBreakdown {
					fmt.Printf("  %-30s %d\n", fc.Fault, fc.Count)
				}
			}
			fmt.Println()
			return nil
		},
	}
}

func availabilityColored(pct float64) string {
	formatted := fmt.Sprintf("%.1f%%", pct)
	switch {
	case pct >= 95:
		return color.New(color.FgGreen).Sprint(formatted)
	case pct >= 85:
		return color.New(color.FgYellow).Sprint(formatted)
	default:
		return color.New(color.FgRed).Sprint(formatted)
	}
}

func dashboardReliabilityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reliability [asset]",
		Short: "MTTR, MTBF and downtime cost for one asset or the whole fleet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset := ""
			if len(args) == 1 {
				asset = args[0]
			}

			rel, err := wire.DashboardService().AssetReliability(cmd.Context(), asset)
			if err != nil {
				return err
			}

			scope := rel.Asset
			if scope == "" {
				scope = "all assets"
			}
			fmt.Printf("\nReliability for %s\n", scope)
			fmt.Printf("Breakdowns:     %d\n", rel.BreakdownCount)
			fmt.Printf("MTTR:           %.1f min\n", rel.MTTRMinutes)
			if rel.MTBFAvailable {
				fmt.Printf("MTBF:           %.1f days\n", rel.MTBFDays)
			} else {
				fmt.Println("MTBF:           n/a (needs at least two dated events)")
			}
			fmt.Printf("Estimated cost: £%.2f\n", rel.EstimatedCost)

			if len(rel.Events) > 0 {
				fmt.Println("\nEvents:")
				for _, e := range rel.Events {
					fmt.Printf("  %s %-7s %s: %s (%.1f min)\n",
						e.Date, e.Shift, e.Engineer, e.Fault, e.DowntimeMinutes)
				}
			}
			fmt.Println()
			return nil
		},
	}
}

func dashboardBrowseCmd() *cobra.Command {
	var filters primary.ReportFilters

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse stored reports with their generated documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := wire.DashboardService().Browse(cmd.Context(), filters)
			if err != nil {
				return err
			}

			if len(rows) == 0 {
				fmt.Println("No reports found")
				return nil
			}

			for _, row := range rows {
				fmt.Printf("\n#%d  %s %s shift  %s\n", row.ID, row.Date, row.Shift, row.Engineer)
				fmt.Printf("  workbook: %s\n", documentLine(row.WorkbookPath, row.WorkbookExists))
				fmt.Printf("  pdf:      %s\n", documentLine(row.PDFPath, row.PDFExists))
				if row.HandoverNotes != "" {
					fmt.Printf("  notes: %s\n", row.HandoverNotes)
				}
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&filters.Engineer, "engineer", "", "Filter by engineer")
	cmd.Flags().StringVar(&filters.Shift, "shift", "", "Filter by shift")

	return cmd
}

func documentLine(path string, exists bool) string {
	if exists {
		return path
	}
	return color.New(color.FgYellow).Sprintf("%s (missing)", path)
}
