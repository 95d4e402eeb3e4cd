package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoConfigFiles(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir := t.TempDir()

	cfg, err := Load(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, "", cfg.WorktreeDir)
	assert.False(t, cfg.WarnOnRemoteMismatch)
	assert.Empty(t, cfg.Setup.Steps)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir := t.TempDir()

	content := `worktree_dir: ../reviews
warn_on_remote_mismatch: true
setup:
  steps:
    - name: command.run
      command: npm install
    - name: env.copy
      source: ../main/.env
      keys:
        - APP_KEY
        - DB_HOST
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".prwt.yaml"), []byte(content), 0644))

	cfg, err := Load(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, "../reviews", cfg.WorktreeDir)
	assert.True(t, cfg.WarnOnRemoteMismatch)
	require.Len(t, cfg.Setup.Steps, 2)
	assert.Equal(t, "command.run", cfg.Setup.Steps[0].Name)
	assert.Equal(t, "npm install", cfg.Setup.Steps[0].Command)
	assert.Equal(t, []string{"APP_KEY", "DB_HOST"}, cfg.Setup.Steps[1].Keys)
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	require.NoError(t, os.MkdirAll(filepath.Join(configHome, "prwt"), 0755))
	global := "worktree_dir: ../global\nwarn_on_remote_mismatch: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(configHome, "prwt", "config.yaml"), []byte(global), 0644))

	tmpDir := t.TempDir()
	project := "worktree_dir: ../project\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".prwt.yaml"), []byte(project), 0644))

	cfg, err := Load(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, "../project", cfg.WorktreeDir)
	assert.True(t, cfg.WarnOnRemoteMismatch, "global settings survive when project does not override")
}

func TestStepConfig_IsEnabled(t *testing.T) {
	assert.True(t, StepConfig{}.IsEnabled())

	enabled := true
	assert.True(t, StepConfig{Enabled: &enabled}.IsEnabled())

	disabled := false
	assert.False(t, StepConfig{Enabled: &disabled}.IsEnabled())
}
