package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/prwt/prwt/internal/github"
)

var branchStyle = lipgloss.NewStyle().Faint(true)

// SelectPR prompts for one of the repository's open pull requests and
// returns its number.
func SelectPR(prs []github.PRSummary) (int, error) {
	if len(prs) == 0 {
		return 0, fmt.Errorf("no open pull requests")
	}

	options := make([]huh.Option[int], len(prs))
	for i, pr := range prs {
		label := fmt.Sprintf("#%d %s %s", pr.Number, pr.Title, branchStyle.Render("("+pr.HeadRefName+")"))
		options[i] = huh.NewOption(label, pr.Number)
	}

	var selected int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select a pull request").
				Description("The PR's head branch will be checked out as a worktree").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return 0, NormalizeAbort(err)
	}

	return selected, nil
}
