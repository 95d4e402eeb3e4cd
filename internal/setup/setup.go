// Package setup runs configured post-create steps inside a freshly checked
// out PR worktree: shell commands, env-file seeding, and review database
// provisioning. Steps run after the worktree exists; a failing step reports
// an error but never rolls the worktree back.
package setup

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/prwt/prwt/internal/config"
	prwtexec "github.com/prwt/prwt/internal/exec"
)

// Context carries what a step needs to know about the new worktree.
type Context struct {
	WorktreePath string
	Branch       string
	PR           int
}

// Options control step execution.
type Options struct {
	Verbose bool
	Logger  *log.Logger
}

// Step is a single unit of post-create work.
type Step interface {
	Name() string

	// Condition reports whether the step applies to this worktree.
	Condition(sc *Context) bool

	Run(ctx context.Context, sc *Context, opts Options) error
}

// StepsFromConfig builds the step list from configuration. Disabled and
// unknown step names are skipped.
func StepsFromConfig(cfgs []config.StepConfig, commander prwtexec.Commander) []Step {
	steps := make([]Step, 0, len(cfgs))
	for _, cfg := range cfgs {
		if !cfg.IsEnabled() {
			continue
		}

		switch cfg.Name {
		case "command.run":
			steps = append(steps, NewCommandRunStep(cfg.Command, commander))
		case "env.copy":
			steps = append(steps, NewEnvCopyStep(cfg))
		case "database.create":
			steps = append(steps, NewDatabaseStep())
		}
	}
	return steps
}
