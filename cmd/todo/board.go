package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show tasks due today, later, and overdue",
	RunE:  runBoard,
}

func init() {
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	b, err := a.Tasks.Board(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(out, b)
	}

	loc := a.DateMath.Location()
	fmt.Fprintf(out, "Today (%d)\n", len(b.Today))
	printTasks(out, b.Today, loc)
	fmt.Fprintf(out, "Upcoming (%d)\n", len(b.Future))
	printTasks(out, b.Future, loc)
	fmt.Fprintf(out, "Overdue (%d)\n", len(b.Past))
	printTasks(out, b.Past, loc)
	fmt.Fprintf(out, "Completed (%d)\n", len(b.Completed))
	return nil
}
