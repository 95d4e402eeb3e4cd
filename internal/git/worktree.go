package git

import (
	"context"
	"strings"
)

// Worktree describes one entry of `git worktree list`.
type Worktree struct {
	Path   string
	Branch string
}

// Worktrees lists all worktrees of the repository, including the main one.
// Detached worktrees are reported with an empty Branch.
func (g *Runner) Worktrees(ctx context.Context) ([]Worktree, error) {
	output, err := g.run(ctx, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}

	var worktrees []Worktree
	var current Worktree
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			if current.Path != "" {
				worktrees = append(worktrees, current)
				current = Worktree{}
			}
		case strings.HasPrefix(line, "worktree "):
			current.Path = strings.TrimPrefix(line, "worktree ")
		case strings.HasPrefix(line, "branch refs/heads/"):
			current.Branch = strings.TrimPrefix(line, "branch refs/heads/")
		}
	}
	if current.Path != "" {
		worktrees = append(worktrees, current)
	}

	return worktrees, nil
}
