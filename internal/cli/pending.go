package cli

import (
	"github.com/spf13/cobra"

	"github.com/valter-silva-au/tasknotes/internal/core"
)

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List tasks that are not done",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := collectTasks()
		if err != nil {
			return err
		}
		return renderTasks(core.Filter(tasks, core.IsPending))
	},
}

func init() {
	rootCmd.AddCommand(pendingCmd)
}
