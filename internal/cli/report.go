// Package cli contains the cobra commands that translate flags and arguments
// into service calls.
package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/shiftops/internal/ports/primary"
	"github.com/example/shiftops/internal/wire"
)

// ReportCmd returns the report command group.
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Manage the shift report draft and history",
		Long:  "Start a draft at shift start, add entries through the shift, and commit at handover.",
	}

	cmd.AddCommand(reportNewCmd())
	cmd.AddCommand(reportReactiveCmd())
	cmd.AddCommand(reportPPMCmd())
	cmd.AddCommand(reportSpareCmd())
	cmd.AddCommand(reportDraftCmd())
	cmd.AddCommand(reportDiscardCmd())
	cmd.AddCommand(reportCommitCmd())
	cmd.AddCommand(reportEditCmd())
	cmd.AddCommand(reportShowCmd())
	cmd.AddCommand(reportListCmd())
	cmd.AddCommand(reportHistoryCmd())

	return cmd
}

func reportNewCmd() *cobra.Command {
	var req primary.NewDraftRequest

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new shift report draft",
		Long: `Start a new draft for the current shift.

Open reactive tasks from previous shifts are carried over automatically, and
today's scheduled PPMs are pre-filled from the maintenance schedule.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := wire.ReportService().NewDraft(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Started draft for %s %s shift (%s)\n", summary.Date, summary.Shift, summary.Engineer)
			if summary.CarriedOver > 0 {
				fmt.Printf("  %d open task(s) carried over from previous shifts\n", summary.CarriedOver)
			}
			if summary.Scheduled > 0 {
				fmt.Printf("  %d PPM(s) pre-filled from today's schedule\n", summary.Scheduled)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Date, "date", "", "Report date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&req.Shift, "shift", "", "Shift: Day or Night")
	cmd.Flags().StringVar(&req.Engineer, "engineer", "", "Lead engineer name")
	cmd.Flags().StringVar(&req.SecondEngineer, "second", "", "Second engineer name")
	cmd.Flags().StringVar(&req.TeamMembers, "team", "", "Other team members")
	cmd.MarkFlagRequired("shift")
	cmd.MarkFlagRequired("engineer")

	return cmd
}

func reportReactiveCmd() *cobra.Command {
	var req primary.AddReactiveRequest

	cmd := &cobra.Command{
		Use:   "reactive",
		Short: "Add a reactive task to the draft",
		Long: `Record an unplanned repair. Downtime is computed from the call-out and
back-in-service times, rolling over midnight when needed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := wire.ReportService().AddReactive(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Reactive task added (%d in draft)\n", summary.Reactives)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Asset, "asset", "", "Asset name")
	cmd.Flags().StringVar(&req.TimeCalled, "called", "", "Time called out HH:MM")
	cmd.Flags().StringVar(&req.TimeBack, "back", "", "Time back in service HH:MM")
	cmd.Flags().StringVar(&req.Fault, "fault", "", "Fault category")
	cmd.Flags().IntVar(&req.Engineers, "engineers", 0, "Engineers attending (default derives from the crew)")
	cmd.Flags().StringVar(&req.Description, "desc", "", "Work description")
	cmd.Flags().StringVar(&req.Status, "status", "", "Complete, In Progress or Awaiting Parts (default Complete)")
	cmd.MarkFlagRequired("asset")
	cmd.MarkFlagRequired("called")
	cmd.MarkFlagRequired("back")

	return cmd
}

func reportPPMCmd() *cobra.Command {
	var req primary.AddPPMRequest

	cmd := &cobra.Command{
		Use:   "ppm",
		Short: "Add a planned maintenance task to the draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := wire.ReportService().AddPPM(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("✓ PPM task added (%d in draft)\n", summary.PPMs)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Asset, "asset", "", "Asset name")
	cmd.Flags().StringVar(&req.TaskID, "task", "", "Task description or schedule id")
	cmd.Flags().StringVar(&req.Status, "status", "", "Task status (default Complete)")
	cmd.Flags().StringVar(&req.Comments, "comments", "", "Comments")
	cmd.MarkFlagRequired("asset")

	return cmd
}

func reportSpareCmd() *cobra.Command {
	var req primary.AddSpareRequest

	cmd := &cobra.Command{
		Use:   "spare",
		Short: "Record spare part usage in the draft",
		Long: `Record parts used during the shift. Description and location fill in
from the inventory when the part number is known there. Stock decrements
once, when the report is committed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := wire.ReportService().AddSpare(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Spare usage added (%d in draft)\n", summary.Spares)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.PartNumber, "part", "", "Part (ART) number")
	cmd.Flags().IntVar(&req.Quantity, "qty", 1, "Quantity used")
	cmd.Flags().StringVar(&req.Description, "desc", "", "Part description")
	cmd.Flags().StringVar(&req.Location, "location", "", "Storage location")
	cmd.Flags().IntVar(&req.CategoryCode, "category", 0, "Category code")
	cmd.Flags().StringVar(&req.Decision, "decision", "", "Replenishment decision")
	cmd.MarkFlagRequired("part")

	return cmd
}

func reportDraftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draft",
		Short: "Show the current draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := wire.ReportService().ShowDraft(cmd.Context())
			if err != nil {
				return err
			}

			printDraft(d)
			return nil
		},
	}
}

func printDraft(d *primary.Draft) {
	if d.EditingReportID != 0 {
		fmt.Printf("\nEditing report #%d\n", d.EditingReportID)
	} else {
		fmt.Println("\nNew report draft")
	}
	fmt.Printf("Date:     %s\n", d.Date)
	fmt.Printf("Shift:    %s\n", d.Shift)
	fmt.Printf("Engineer: %s\n", d.Engineer)
	if d.SecondEngineer != "" {
		fmt.Printf("Second:   %s\n", d.SecondEngineer)
	}
	if d.TeamMembers != "" {
		fmt.Printf("Team:     %s\n", d.TeamMembers)
	}

	if len(d.Reactives) > 0 {
		fmt.Printf("\nReactive tasks (%d):\n", len(d.Reactives))
		for i, t := range d.Reactives {
			fmt.Printf("  %d. %s: %s [%s] %s-%s, %.1f min down\n",
				i+1, t.Asset, t.Fault, statusColored(t.Status), t.TimeCalled, t.TimeBack, t.DowntimeMinutes)
		}
	}
	if len(d.PPMs) > 0 {
		fmt.Printf("\nPPM tasks (%d):\n", len(d.PPMs))
		for i, p := range d.PPMs {
			fmt.Printf("  %d. %s: %s [%s]\n", i+1, p.Asset, p.TaskID, statusColored(p.Status))
		}
	}
	if len(d.Spares) > 0 {
		fmt.Printf("\nSpares used (%d):\n", len(d.Spares))
		for i, s := range d.Spares {
			fmt.Printf("  %d. %s x%d %s\n", i+1, s.PartNumber, s.Quantity, s.Description)
		}
	}
	fmt.Println()
}

func statusColored(status string) string {
	switch status {
	case "Complete":
		return color.New(color.FgGreen).Sprint(status)
	case "In Progress":
		return color.New(color.FgYellow).Sprint(status)
	case "Awaiting Parts":
		return color.New(color.FgRed).Sprint(status)
	default:
		return status
	}
}

func reportDiscardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discard",
		Short: "Discard the current draft without saving",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.ReportService().DiscardDraft(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("✓ Draft discarded")
			return nil
		},
	}
}

func reportCommitCmd() *cobra.Command {
	var req primary.CommitRequest

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit the draft and generate handover documents",
		Long: `Save the draft to the database, decrement inventory for spares used,
and generate the workbook and PDF into the reports archive.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := wire.ReportService().Commit(cmd.Context(), req)
			if err != nil {
				return err
			}

			verb := "updated"
			if result.Created {
				verb = "created"
			}
			fmt.Printf("✓ Report #%d %s\n", result.ReportID, verb)

			if result.WorkbookError != "" {
				fmt.Printf("  %s workbook: %s\n", color.New(color.FgYellow).Sprint("!"), result.WorkbookError)
			} else {
				fmt.Printf("  workbook: %s\n", result.WorkbookPath)
			}
			if result.PDFError != "" {
				fmt.Printf("  %s pdf: %s\n", color.New(color.FgYellow).Sprint("!"), result.PDFError)
			} else {
				fmt.Printf("  pdf: %s\n", result.PDFPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.HandoverNotes, "notes", "", "Handover notes for the incoming shift")
	cmd.Flags().BoolVar(&req.RadiosCharged, "radios", false, "Radios checked and charged")
	cmd.Flags().BoolVar(&req.PhonesWorking, "phones", false, "Phones handed over")
	cmd.Flags().BoolVar(&req.KeysHanded, "keys", false, "Keys handed over")
	cmd.Flags().BoolVar(&req.SafetyCheck, "safety", false, "Safety walkround done")

	return cmd
}

func reportEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [report-id]",
		Short: "Load a stored report into the draft for amendment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid report id %q", args[0])
			}

			summary, err := wire.ReportService().LoadForEdit(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Editing report #%d (%d reactive, %d ppm, %d spares)\n",
				summary.EditingReportID, summary.Reactives, summary.PPMs, summary.Spares)
			return nil
		},
	}
}

func reportShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [report-id]",
		Short: "Show a stored report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid report id %q", args[0])
			}

			report, err := wire.ReportService().GetReport(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("\nReport #%d  %s %s shift\n", report.ID, report.Date, report.Shift)
			fmt.Printf("Engineer: %s", report.Engineer)
			if report.SecondEngineer != "" {
				fmt.Printf(" / %s", report.SecondEngineer)
			}
			fmt.Println()
			if report.SubmittedAt != "" {
				fmt.Printf("Submitted: %s\n", report.SubmittedAt)
			}
			if report.HandoverNotes != "" {
				fmt.Printf("\nHandover notes:\n%s\n", report.HandoverNotes)
			}
			fmt.Printf("\nChecks: radios %s  phones %s  keys %s  safety %s\n",
				checkMark(report.RadiosCharged), checkMark(report.PhonesWorking),
				checkMark(report.KeysHanded), checkMark(report.SafetyCheck))

			if len(report.Reactives) > 0 {
				fmt.Printf("\nReactive tasks (%d):\n", len(report.Reactives))
				for i, t := range report.Reactives {
					fmt.Printf("  %d. %s: %s [%s] %s-%s, %.1f min down\n",
						i+1, t.Asset, t.Fault, statusColored(t.Status), t.TimeCalled, t.TimeBack, t.DowntimeMinutes)
				}
			}
			if len(report.PPMs) > 0 {
				fmt.Printf("\nPPM tasks (%d):\n", len(report.PPMs))
				for i, p := range report.PPMs {
					fmt.Printf("  %d. %s: %s [%s]\n", i+1, p.Asset, p.TaskID, statusColored(p.Status))
				}
			}
			if len(report.Spares) > 0 {
				fmt.Printf("\nSpares used (%d):\n", len(report.Spares))
				for i, s := range report.Spares {
					fmt.Printf("  %d. %s x%d %s\n", i+1, s.PartNumber, s.Quantity, s.Description)
				}
			}
			fmt.Println()
			return nil
		},
	}
}

func checkMark(ok bool) string {
	if ok {
		return color.New(color.FgGreen).Sprint("✓")
	}
	return color.New(color.FgRed).Sprint("✗")
}

func reportListCmd() *cobra.Command {
	var filters primary.ReportFilters

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored reports, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := wire.ReportService().ListReports(cmd.Context(), filters)
			if err != nil {
				return err
			}

			if len(reports) == 0 {
				fmt.Println("No reports found")
				return nil
			}

			fmt.Printf("\n%-6s %-12s %-7s %s\n", "ID", "DATE", "SHIFT", "ENGINEER")
			fmt.Println("────────────────────────────────────────────")
			for _, r := range reports {
				fmt.Printf("%-6d %-12s %-7s %s\n", r.ID, r.Date, r.Shift, r.Engineer)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&filters.Engineer, "engineer", "", "Filter by engineer")
	cmd.Flags().StringVar(&filters.Shift, "shift", "", "Filter by shift")

	return cmd
}

func reportHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [asset]",
		Short: "Show an asset's reactive history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := wire.ReportService().AssetHistory(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if len(events) == 0 {
				fmt.Printf("No reactive history for %s\n", args[0])
				return nil
			}

			fmt.Printf("\nHistory for %s (%d events):\n", args[0], len(events))
			for _, e := range events {
				fmt.Printf("  %s %-7s %-14s %s: %s (%.1f min)\n",
					e.Date, e.Shift, statusColored(e.Status), e.Engineer, e.Fault, e.DowntimeMinutes)
			}
			fmt.Println()
			return nil
		},
	}
}
