// Package errors defines the typed errors surfaced by prwt.
// Every failure mode is a sentinel so callers can match with errors.Is;
// the exit code is always 1 regardless of kind.
package errors

import "errors"

var (
	// ErrInvalidArgument indicates a malformed PR number.
	ErrInvalidArgument = errors.New("invalid PR number")

	// ErrMissingDependency indicates one or more required external tools
	// are not installed or not on PATH.
	ErrMissingDependency = errors.New("missing required tool")

	// ErrNotARepository indicates prwt was invoked outside a git working tree.
	ErrNotARepository = errors.New("not inside a git repository")

	// ErrTargetExists indicates the worktree destination path is already occupied.
	ErrTargetExists = errors.New("target directory already exists")

	// ErrPRFetchFailed indicates the gh query for PR metadata failed.
	ErrPRFetchFailed = errors.New("fetching PR metadata failed")

	// ErrMetadataParseFailed indicates a required field was missing, null,
	// or empty in the gh response.
	ErrMetadataParseFailed = errors.New("parsing PR metadata failed")

	// ErrNoOriginRemote indicates the local repository has no readable origin remote.
	ErrNoOriginRemote = errors.New("no origin remote configured")

	// ErrFetchFailed indicates fetching the PR branch from the resolved remote failed.
	ErrFetchFailed = errors.New("fetching branch failed")

	// ErrWorktreeCreateFailed indicates git worktree creation failed.
	ErrWorktreeCreateFailed = errors.New("creating worktree failed")
)
