package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/prwt/prwt/internal/config"
	prwterrors "github.com/prwt/prwt/internal/errors"
	"github.com/prwt/prwt/internal/git"
)

var prStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List worktrees of the current repository",
	Long: `Lists all worktrees of the current repository and annotates the ones
created by prwt with their pull request number and remote.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		g := git.New(cwd, nil)
		if !g.IsInsideWorkTree(cmd.Context()) {
			return prwterrors.ErrNotARepository
		}

		worktrees, err := g.Worktrees(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing worktrees: %w", err)
		}

		for _, wt := range worktrees {
			branch := wt.Branch
			if branch == "" {
				branch = "(detached)"
			}

			annotation := ""
			if state, err := config.ReadLocalState(wt.Path); err == nil && state != nil {
				annotation = prStyle.Render(fmt.Sprintf("PR #%d via %s", state.PR, state.Remote))
			}

			fmt.Printf("%-40s  %-30s  %s\n", wt.Path, branch, annotation)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
