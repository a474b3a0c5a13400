package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/shiftops/internal/wire"
)

// MasterdataCmd returns the masterdata command group.
func MasterdataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "masterdata",
		Short: "Inspect the site master-data files",
	}

	cmd.AddCommand(masterdataAssetsCmd())
	cmd.AddCommand(masterdataScheduleCmd())

	return cmd
}

func masterdataAssetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "List the known assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			assets, err := wire.AssetSource().Assets()
			if err != nil {
				return err
			}

			for _, asset := range assets {
				fmt.Println(asset)
			}
			return nil
		},
	}
}

func masterdataScheduleCmd() *cobra.Command {
	var dayFlag string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Preview the scheduled PPMs for a weekday",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now().Weekday()
			if dayFlag != "" {
				parsed, err := parseWeekday(dayFlag)
				if err != nil {
					return err
				}
				day = parsed
			}

			tasks, err := wire.ScheduleSource().TasksForDay(day)
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Printf("No PPMs scheduled for %s\n", day)
				return nil
			}

			fmt.Printf("\nScheduled for %s:\n", day)
			for _, task := range tasks {
				fmt.Printf("  %-20s %s\n", task.Asset, task.Description)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Weekday name (default today)")

	return cmd
}

func parseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), name) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}
