package cli

import (
	"github.com/spf13/cobra"

	"github.com/valter-silva-au/tasknotes/internal/core"
)

var overdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "List overdue tasks",
	Long: `List tasks whose due date is strictly before today and that are not done.

A task due today is never overdue, and done tasks never count as overdue no
matter how old their due date is.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := collectTasks()
		if err != nil {
			return err
		}
		return renderTasks(core.Filter(tasks, core.Overdue(core.Today())))
	},
}

func init() {
	rootCmd.AddCommand(overdueCmd)
}
