package cli

import (
	"github.com/spf13/cobra"

	"github.com/valter-silva-au/tasknotes/internal/core"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "List tasks due today",
	Long: `List tasks whose due date is today's local calendar date.

Done tasks due today are included; use "pending" or "count --today" when you
only care about open work.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := collectTasks()
		if err != nil {
			return err
		}
		return renderTasks(core.Filter(tasks, core.DueToday(core.Today())))
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
