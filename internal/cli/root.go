package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/valter-silva-au/tasknotes/pkg/models"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// vaultPathFlag holds the value of the persistent --path flag.
var vaultPathFlag string

var rootCmd = &cobra.Command{
	Use:   "tn",
	Short: "tasknotes - query task notes in a vault",
	Long: `tasknotes (tn) scans a vault of Markdown notes, parses the task metadata
embedded in each note's YAML frontmatter, and filters or counts the resulting
tasks by status and date.

It is designed to feed status-bar widgets and shell prompts: list output is
pretty-printed JSON, count output is a single integer.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tn %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

// resolveVaultPath returns the vault root to scan. The --path flag takes
// precedence, then the TN_VAULT environment variable, then the configured
// vault path loaded during app initialization.
func resolveVaultPath() (string, error) {
	if vaultPathFlag != "" {
		return vaultPathFlag, nil
	}
	if env := os.Getenv("TN_VAULT"); env != "" {
		return env, nil
	}
	if VaultPath != "" {
		return VaultPath, nil
	}
	return "", fmt.Errorf("no vault path given: use --path, TN_VAULT, or vault.path in .tasknotesrc")
}

// collectTasks resolves the vault path and runs a scan.
func collectTasks() ([]models.Task, error) {
	if Scanner == nil {
		return nil, fmt.Errorf("scanner not initialized")
	}
	root, err := resolveVaultPath()
	if err != nil {
		return nil, err
	}
	tasks, err := Scanner.Collect(root)
	if err != nil {
		return nil, fmt.Errorf("scanning vault: %w", err)
	}
	return tasks, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPathFlag, "path", "p", "", "Vault root directory to scan")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
