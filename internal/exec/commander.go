// Package exec provides interfaces and implementations for command execution.
// This abstraction allows for dependency injection and testing of code that
// shells out to gh and git.
package exec

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Commander defines the interface for executing commands.
// Implementations can provide real command execution or mock behavior for testing.
type Commander interface {
	// Run executes a command in the specified directory with the given arguments.
	// Returns the command's stdout. On failure the error carries the trimmed
	// stderr output, keeping stdout clean for JSON decoding.
	Run(ctx context.Context, dir string, command string, args ...string) ([]byte, error)
}

// RealCommander executes commands using the real operating system.
// This is the production implementation that actually runs commands.
type RealCommander struct{}

// Run executes the command using exec.CommandContext.
func (c *RealCommander) Run(ctx context.Context, dir string, command string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout.Bytes(), fmt.Errorf("%w: %s", err, msg)
		}
		return stdout.Bytes(), err
	}

	return stdout.Bytes(), nil
}

// LookPath resolves an executable in PATH.
// It is a variable so tests can substitute a fake resolver.
var LookPath = exec.LookPath
