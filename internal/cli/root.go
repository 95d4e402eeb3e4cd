package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prwt [PR_NUMBER] [TARGET_DIR]",
	Short: "Check out a GitHub pull request as a git worktree",
	Long: `prwt resolves a pull request number to its head branch and source
repository via the gh CLI, then materializes that branch as a git worktree.

When the PR comes from a fork, a remote named after the fork owner is added
for the duration of the run; it is removed again if anything fails afterwards
and kept on success for the review session.

Arguments:
  PR_NUMBER   Number of the pull request to check out
  TARGET_DIR  Optional worktree path (defaults to ../pr-<number>)`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCreate,
}

// Execute runs the CLI. Errors are reported on stderr; the caller maps a
// non-nil return to exit code 1.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.Flags().BoolP("interactive", "i", false, "Pick a PR from the repository's open pull requests")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose output")
}
