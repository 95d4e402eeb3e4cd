// Package git wraps the git CLI operations prwt needs: remote management,
// branch fetching, and worktree creation. All invocations go through an
// exec.Commander so tests can substitute a mock.
package git

import (
	"context"
	"fmt"
	"strings"

	prwtexec "github.com/prwt/prwt/internal/exec"
)

// Runner executes git commands against a single repository directory.
type Runner struct {
	dir       string
	commander prwtexec.Commander
}

// New creates a Runner for the repository at dir.
// If commander is nil, a RealCommander is used.
func New(dir string, commander prwtexec.Commander) *Runner {
	if commander == nil {
		commander = &prwtexec.RealCommander{}
	}
	return &Runner{dir: dir, commander: commander}
}

// Dir returns the repository directory the runner operates on.
func (g *Runner) Dir() string {
	return g.dir
}

func (g *Runner) run(ctx context.Context, args ...string) ([]byte, error) {
	return g.commander.Run(ctx, g.dir, "git", args...)
}

// IsInsideWorkTree reports whether the runner's directory is inside a
// git working tree.
func (g *Runner) IsInsideWorkTree(ctx context.Context) bool {
	output, err := g.run(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) == "true"
}

// RemoteURL retrieves the URL configured for the named remote.
// Returns an error when the remote is absent or unreadable.
func (g *Runner) RemoteURL(ctx context.Context, name string) (string, error) {
	output, err := g.run(ctx, "remote", "get-url", name)
	if err != nil {
		return "", fmt.Errorf("getting URL of remote %q: %w", name, err)
	}
	url := strings.TrimSpace(string(output))
	if url == "" {
		return "", fmt.Errorf("remote %q has no URL", name)
	}
	return url, nil
}

// Remotes lists the names of all configured remotes.
func (g *Runner) Remotes(ctx context.Context) ([]string, error) {
	output, err := g.run(ctx, "remote")
	if err != nil {
		return nil, fmt.Errorf("listing remotes: %w", err)
	}

	var remotes []string
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			remotes = append(remotes, line)
		}
	}
	return remotes, nil
}

// HasRemote reports whether a remote with the given name exists.
func (g *Runner) HasRemote(ctx context.Context, name string) (bool, error) {
	remotes, err := g.Remotes(ctx)
	if err != nil {
		return false, err
	}
	for _, r := range remotes {
		if r == name {
			return true, nil
		}
	}
	return false, nil
}

// AddRemote adds a remote with the given name and URL.
func (g *Runner) AddRemote(ctx context.Context, name, url string) error {
	if _, err := g.run(ctx, "remote", "add", name, url); err != nil {
		return fmt.Errorf("adding remote %q: %w", name, err)
	}
	return nil
}

// RemoveRemote removes the named remote.
func (g *Runner) RemoveRemote(ctx context.Context, name string) error {
	if _, err := g.run(ctx, "remote", "remove", name); err != nil {
		return fmt.Errorf("removing remote %q: %w", name, err)
	}
	return nil
}

// FetchBranch fetches a single branch from the named remote.
func (g *Runner) FetchBranch(ctx context.Context, remote, branch string) error {
	if _, err := g.run(ctx, "fetch", remote, branch); err != nil {
		return fmt.Errorf("fetching %q from %q: %w", branch, remote, err)
	}
	return nil
}

// BranchExists checks if a local branch exists in the repository.
func (g *Runner) BranchExists(ctx context.Context, branch string) bool {
	_, err := g.run(ctx, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch)
	return err == nil
}

// AddWorktree creates a worktree at path checked out to branch.
// When the branch does not exist locally yet, it is created tracking
// remote/branch (which must have been fetched beforehand).
func (g *Runner) AddWorktree(ctx context.Context, path, branch, remote string) error {
	if g.BranchExists(ctx, branch) {
		if _, err := g.run(ctx, "worktree", "add", path, branch); err != nil {
			return fmt.Errorf("git worktree add failed: %w", err)
		}
		return nil
	}

	if _, err := g.run(ctx, "worktree", "add", "--track", "-b", branch, path, remote+"/"+branch); err != nil {
		return fmt.Errorf("git worktree add failed: %w", err)
	}
	return nil
}
