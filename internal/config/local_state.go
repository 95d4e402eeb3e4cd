package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalStateFile is written into each worktree prwt creates. It records how
// the worktree came to be so `prwt list` can annotate it later.
const LocalStateFile = ".prwt.local"

// LocalState is worktree-local state that should never be committed.
type LocalState struct {
	PR          int    `yaml:"pr"`
	Branch      string `yaml:"branch"`
	BaseBranch  string `yaml:"base_branch,omitempty"`
	Remote      string `yaml:"remote"`
	RemoteAdded bool   `yaml:"remote_added"`
}

// ReadLocalState reads the state file from a worktree.
// Returns (nil, nil) when the worktree has none.
func ReadLocalState(worktreePath string) (*LocalState, error) {
	statePath := filepath.Join(worktreePath, LocalStateFile)

	content, err := os.ReadFile(statePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading local state: %w", err)
	}

	var state LocalState
	if err := yaml.Unmarshal(content, &state); err != nil {
		return nil, fmt.Errorf("parsing local state: %w", err)
	}

	return &state, nil
}

// WriteLocalState writes the state file into a worktree.
func WriteLocalState(worktreePath string, state LocalState) error {
	content, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshaling local state: %w", err)
	}

	statePath := filepath.Join(worktreePath, LocalStateFile)
	if err := os.WriteFile(statePath, content, 0644); err != nil {
		return fmt.Errorf("writing local state: %w", err)
	}

	return nil
}
