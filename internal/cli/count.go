package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valter-silva-au/tasknotes/internal/core"
)

var (
	countToday          bool
	countOverdue        bool
	countCompletedToday bool
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print a task count as a single integer",
	Long: `Print the number of tasks matching a filter as a bare integer, suitable
for status-bar widgets.

Without flags the pending count is printed. When several flags are given,
--today wins over --overdue, which wins over --completed-today.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := collectTasks()
		if err != nil {
			return err
		}
		sel := core.CountSelector{
			Today:          countToday,
			Overdue:        countOverdue,
			CompletedToday: countCompletedToday,
		}
		fmt.Println(core.Count(tasks, sel.Predicate(core.Today())))
		return nil
	},
}

func init() {
	countCmd.Flags().BoolVar(&countToday, "today", false, "Count tasks due today")
	countCmd.Flags().BoolVar(&countOverdue, "overdue", false, "Count overdue tasks")
	countCmd.Flags().BoolVar(&countCompletedToday, "completed-today", false, "Count tasks completed today")
	rootCmd.AddCommand(countCmd)
}
