package cli

import (
	"github.com/spf13/cobra"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "List every task in the vault",
	Long: `List every task parsed from the vault, regardless of status or dates.

Output is a pretty-printed JSON array, one object per task.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := collectTasks()
		if err != nil {
			return err
		}
		return renderTasks(tasks)
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
}
