package cli

import (
	"github.com/spf13/cobra"

	"github.com/valter-silva-au/tasknotes/internal/core"
)

var completedTodayCmd = &cobra.Command{
	Use:   "completed-today",
	Short: "List tasks completed today",
	Long:  `List tasks whose completion date is today's local calendar date.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := collectTasks()
		if err != nil {
			return err
		}
		return renderTasks(core.Filter(tasks, core.CompletedToday(core.Today())))
	},
}

func init() {
	rootCmd.AddCommand(completedTodayCmd)
}
