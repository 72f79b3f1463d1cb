package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"todo-assistant/internal/task"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"stats"},
	Short:   "Show completion statistics",
	RunE:    runDashboard,
}

func init() {
	dashboardCmd.Flags().Int("trend-days", task.DefaultTrendDays, "days in the created/completed trend")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	trendDays, _ := cmd.Flags().GetInt("trend-days")
	d, err := a.Tasks.Dashboard(ctx, task.DashboardInput{TrendDays: trendDays})
	if err != nil {
		return err
	}
	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), d)
	}
	printDashboard(cmd.OutOrStdout(), d)
	return nil
}

func printDashboard(w io.Writer, d task.DashboardOutput) {
	rate := 0
	if d.Total > 0 {
		rate = d.Completed * 100 / d.Total
	}
	fmt.Fprintf(w, "Total: %d  Completed: %d (%d%%)  Active: %d  Overdue: %d\n",
		d.Total, d.Completed, rate, d.Active, d.Overdue)
	fmt.Fprintf(w, "Perfect days: %d\n", d.PerfectDays)

	if len(d.Recent) == 0 {
		return
	}
	fmt.Fprintln(w, "Recent activity:")
	for _, act := range d.Recent {
		fmt.Fprintf(w, "  %s  %-9s %s\n", act.At.Format(timeLayout), act.Kind, act.Title)
	}
}
