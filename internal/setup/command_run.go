package setup

import (
	"context"
	"fmt"

	prwtexec "github.com/prwt/prwt/internal/exec"
)

// CommandRunStep runs a shell command inside the new worktree.
type CommandRunStep struct {
	command   string
	commander prwtexec.Commander
}

// NewCommandRunStep creates a command step. If commander is nil, a
// RealCommander is used.
func NewCommandRunStep(command string, commander prwtexec.Commander) *CommandRunStep {
	if commander == nil {
		commander = &prwtexec.RealCommander{}
	}
	return &CommandRunStep{command: command, commander: commander}
}

func (s *CommandRunStep) Name() string {
	return "command.run"
}

func (s *CommandRunStep) Condition(sc *Context) bool {
	return s.command != ""
}

func (s *CommandRunStep) Run(ctx context.Context, sc *Context, opts Options) error {
	output, err := s.commander.Run(ctx, sc.WorktreePath, "sh", "-c", s.command)
	if err != nil {
		return fmt.Errorf("command %q failed: %w\n%s", s.command, err, string(output))
	}
	return nil
}
