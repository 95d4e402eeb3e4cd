// Package checkout implements the PR-to-worktree flow: resolve a pull
// request's head branch and source repository, classify it as same-repo or
// fork, fetch the branch, and create a worktree. A remote added for a fork
// is owned by the run and removed again on any later failure.
package checkout

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/charmbracelet/log"

	prwterrors "github.com/prwt/prwt/internal/errors"
	prwtexec "github.com/prwt/prwt/internal/exec"
	"github.com/prwt/prwt/internal/git"
	"github.com/prwt/prwt/internal/github"
)

var prNumberRe = regexp.MustCompile(`^[0-9]+$`)

// ValidatePRNumber checks that s is a plain positive decimal number.
func ValidatePRNumber(s string) error {
	if !prNumberRe.MatchString(s) {
		return fmt.Errorf("%w: %q", prwterrors.ErrInvalidArgument, s)
	}
	return nil
}

// Options control a single Create run.
type Options struct {
	// TargetDir is the worktree destination. Empty means ../pr-<number>.
	TargetDir string

	// WarnOnRemoteMismatch logs a warning when a pre-existing remote of the
	// resolved name points somewhere other than the PR's source repository.
	// The fetch still goes through the existing remote unchanged.
	WarnOnRemoteMismatch bool
}

// Info describes a successfully created worktree.
type Info struct {
	Dir         string
	Branch      string
	BaseBranch  string
	Remote      string
	RemoteAdded bool
}

// Creator wires the git and gh collaborators for Create.
type Creator struct {
	git       *git.Runner
	github    *github.Client
	checkDeps func() error
	logger    *log.Logger
	stat      func(string) (os.FileInfo, error)
}

// NewCreator builds a Creator operating on the repository at dir.
// A nil commander uses the real gh and git binaries.
func NewCreator(dir string, commander prwtexec.Commander, logger *log.Logger) *Creator {
	if logger == nil {
		logger = log.Default()
	}
	return &Creator{
		git:       git.New(dir, commander),
		github:    github.NewClient(dir, commander),
		checkDeps: github.CheckDependencies,
		logger:    logger,
		stat:      os.Stat,
	}
}

// Create resolves prNumber and materializes its head branch as a worktree.
//
// Side effects are strictly ordered: remote add (fork only) → fetch →
// worktree creation. Each step's success is a precondition for the next, and
// every failure after a remote was added removes that remote before the
// error surfaces.
func (c *Creator) Create(ctx context.Context, prNumber string, opts Options) (info *Info, err error) {
	if err := ValidatePRNumber(prNumber); err != nil {
		return nil, err
	}
	number, _ := strconv.Atoi(prNumber)

	if err := c.checkDeps(); err != nil {
		return nil, err
	}

	if !c.git.IsInsideWorkTree(ctx) {
		return nil, prwterrors.ErrNotARepository
	}

	target := opts.TargetDir
	if target == "" {
		target = "../pr-" + prNumber
	}
	if _, statErr := c.stat(target); statErr == nil {
		return nil, fmt.Errorf("%w: %s", prwterrors.ErrTargetExists, target)
	}

	c.logger.Debug("resolving PR metadata", "pr", number)
	meta, err := c.github.ViewPR(ctx, number)
	if err != nil {
		return nil, err
	}

	originURL, err := c.git.RemoteURL(ctx, "origin")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", prwterrors.ErrNoOriginRemote, err)
	}

	originNorm := git.NormalizeRemoteURL(originURL)
	host := git.HostOf(originNorm)
	sourceURL := fmt.Sprintf("https://%s/%s/%s.git", host, meta.HeadOwner, meta.HeadRepo)
	sourceNorm := git.NormalizeRemoteURL(sourceURL)

	remote := "origin"
	remoteAdded := false

	if sourceNorm != originNorm {
		remote = meta.HeadOwner
		c.logger.Debug("PR is from a fork", "remote", remote, "url", sourceURL)

		exists, err := c.git.HasRemote(ctx, remote)
		if err != nil {
			return nil, err
		}
		if exists {
			// Reused remotes are caller-managed: never removed, never rewritten.
			if opts.WarnOnRemoteMismatch {
				if existingURL, err := c.git.RemoteURL(ctx, remote); err == nil {
					if git.NormalizeRemoteURL(existingURL) != sourceNorm {
						c.logger.Warn("existing remote does not match PR source repository",
							"remote", remote, "existing", existingURL, "expected", sourceURL)
					}
				}
			}
		} else {
			if err := c.git.AddRemote(ctx, remote, sourceURL); err != nil {
				return nil, err
			}
			remoteAdded = true
		}
	} else {
		c.logger.Debug("PR branch lives in origin", "branch", meta.HeadRefName)
	}

	// Cleanup guard: armed once a remote was added by this run, disarmed
	// just before the success return. Removal failures are swallowed; the
	// original error is what surfaces.
	armed := remoteAdded
	defer func() {
		if !armed {
			return
		}
		if rmErr := c.git.RemoveRemote(context.WithoutCancel(ctx), remote); rmErr != nil {
			c.logger.Debug("cleanup: removing added remote failed", "remote", remote, "err", rmErr)
		}
	}()

	c.logger.Debug("fetching branch", "remote", remote, "branch", meta.HeadRefName)
	if err := c.git.FetchBranch(ctx, remote, meta.HeadRefName); err != nil {
		return nil, fmt.Errorf("%w: branch %q from remote %q: %v",
			prwterrors.ErrFetchFailed, meta.HeadRefName, remote, err)
	}

	c.logger.Debug("creating worktree", "path", target, "branch", meta.HeadRefName)
	if err := c.git.AddWorktree(ctx, target, meta.HeadRefName, remote); err != nil {
		return nil, fmt.Errorf("%w: %v", prwterrors.ErrWorktreeCreateFailed, err)
	}

	armed = false

	return &Info{
		Dir:         target,
		Branch:      meta.HeadRefName,
		BaseBranch:  meta.BaseRefName,
		Remote:      remote,
		RemoteAdded: remoteAdded,
	}, nil
}
