package main

import (
	"github.com/spf13/cobra"

	"todo-assistant/internal/task"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long:    `Lists tasks with optional priority filtering, search, and due-date ordering.`,
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringP("priority", "p", task.PriorityAll, "filter by priority (all, low, medium, high)")
	listCmd.Flags().StringP("search", "s", "", "search title and description (case-insensitive)")
	listCmd.Flags().String("sort", task.SortDueAsc, "sort order ("+task.SortDueAsc+", "+task.SortDueDesc+")")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	priority, _ := cmd.Flags().GetString("priority")
	search, _ := cmd.Flags().GetString("search")
	sortBy, _ := cmd.Flags().GetString("sort")

	tasks, err := a.Tasks.List(ctx, task.ListInput{Priority: priority, Search: search, Sort: sortBy})
	if err != nil {
		return err
	}
	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), tasks)
	}
	printTasks(cmd.OutOrStdout(), tasks, a.DateMath.Location())
	return nil
}
