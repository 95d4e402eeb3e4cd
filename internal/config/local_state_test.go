package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLocalState_MissingFile(t *testing.T) {
	state, err := ReadLocalState(t.TempDir())

	assert.NoError(t, err)
	assert.Nil(t, state)
}

func TestWriteAndReadLocalState(t *testing.T) {
	tmpDir := t.TempDir()

	err := WriteLocalState(tmpDir, LocalState{
		PR:          456,
		Branch:      "feature-x",
		BaseBranch:  "main",
		Remote:      "alice",
		RemoteAdded: true,
	})
	require.NoError(t, err)

	state, err := ReadLocalState(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, state)

	assert.Equal(t, 456, state.PR)
	assert.Equal(t, "feature-x", state.Branch)
	assert.Equal(t, "main", state.BaseBranch)
	assert.Equal(t, "alice", state.Remote)
	assert.True(t, state.RemoteAdded)
}

func TestReadLocalState_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	statePath := filepath.Join(tmpDir, LocalStateFile)
	require.NoError(t, os.WriteFile(statePath, []byte("pr: [broken"), 0644))

	_, err := ReadLocalState(tmpDir)
	assert.Error(t, err)
}
