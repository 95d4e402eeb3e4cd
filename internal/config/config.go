// Package config loads prwt configuration and per-worktree local state.
// Configuration is optional: the baseline checkout flow works with an
// entirely empty config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// ProjectConfigName is the per-repository config file (without extension).
const ProjectConfigName = ".prwt"

// Config is the merged global + project configuration.
type Config struct {
	// WorktreeDir is the base directory for default worktree targets,
	// relative to the repository root. Empty means the parent directory.
	WorktreeDir string `mapstructure:"worktree_dir"`

	// WarnOnRemoteMismatch enables a warning when a reused remote's URL
	// differs from the PR's source repository.
	WarnOnRemoteMismatch bool `mapstructure:"warn_on_remote_mismatch"`

	// Setup configures steps run inside a freshly created worktree.
	Setup SetupConfig `mapstructure:"setup"`
}

// SetupConfig holds the post-create step list.
type SetupConfig struct {
	Steps []StepConfig `mapstructure:"steps"`
}

// StepConfig configures a single setup step.
type StepConfig struct {
	Name    string   `mapstructure:"name"`
	Enabled *bool    `mapstructure:"enabled"`
	Command string   `mapstructure:"command"`
	Source  string   `mapstructure:"source"`
	File    string   `mapstructure:"file"`
	Keys    []string `mapstructure:"keys"`
}

// IsEnabled reports whether the step should run. Steps are enabled unless
// explicitly disabled.
func (s StepConfig) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// Load reads the global config (~/.config/prwt/config.yaml) and merges the
// project config (.prwt.yaml in projectDir) over it. Missing files are not
// an error.
func Load(projectDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if configDir, err := os.UserConfigDir(); err == nil {
		globalPath := filepath.Join(configDir, "prwt", "config.yaml")
		if _, err := os.Stat(globalPath); err == nil {
			v.SetConfigFile(globalPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading global config: %w", err)
			}
		}
	}

	project := viper.New()
	project.SetConfigName(ProjectConfigName)
	project.SetConfigType("yaml")
	project.AddConfigPath(projectDir)
	if err := project.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading project config: %w", err)
		}
	} else {
		if err := v.MergeConfigMap(project.AllSettings()); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &cfg, nil
}
