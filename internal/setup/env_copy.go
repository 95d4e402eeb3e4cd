package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prwt/prwt/internal/config"
)

// EnvCopyStep copies selected keys from a source env file into the
// worktree's env file, so a PR checkout inherits local secrets without
// sharing the whole file.
type EnvCopyStep struct {
	source string
	file   string
	keys   []string
}

// NewEnvCopyStep creates an env.copy step from its configuration.
func NewEnvCopyStep(cfg config.StepConfig) *EnvCopyStep {
	file := cfg.File
	if file == "" {
		file = ".env"
	}
	return &EnvCopyStep{
		source: cfg.Source,
		file:   file,
		keys:   cfg.Keys,
	}
}

func (s *EnvCopyStep) Name() string {
	return "env.copy"
}

func (s *EnvCopyStep) Condition(sc *Context) bool {
	return s.source != "" && len(s.keys) > 0
}

func (s *EnvCopyStep) Run(ctx context.Context, sc *Context, opts Options) error {
	sourcePath := s.source
	if !filepath.IsAbs(sourcePath) {
		sourcePath = filepath.Join(sc.WorktreePath, sourcePath)
	}

	if _, err := os.Stat(sourcePath); err != nil {
		return fmt.Errorf("source file %q: %w", sourcePath, err)
	}
	sourceEnv := readEnvFile(sourcePath)

	values := make(map[string]string, len(s.keys))
	var missing []string
	for _, key := range s.keys {
		if value, ok := sourceEnv[key]; ok {
			values[key] = value
		} else {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("keys not found in source: %s", strings.Join(missing, ", "))
	}

	targetPath := filepath.Join(sc.WorktreePath, s.file)
	content, err := os.ReadFile(targetPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading target file: %w", err)
	}

	// Apply in configured order so output is deterministic.
	for _, key := range s.keys {
		content = upsertEnvValue(content, key, values[key])
	}

	if err := os.WriteFile(targetPath, content, 0644); err != nil {
		return fmt.Errorf("writing target file: %w", err)
	}

	return nil
}
