package iofs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/taxseed/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	configDir := filepath.Join(tmpDir, ".config", "taxseed")
	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "Config directory should exist")
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	logDir := filepath.Join(tmpDir, ".local", "share", "taxseed", "logs")
	info, err = os.Stat(logDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "Log directory should exist")

	// idempotent
	require.NoError(t, EnsureDirs(tmpDir))
}

func TestTouchDir(t *testing.T) {
	tmpDir := t.TempDir()
	newDir := filepath.Join(tmpDir, "test", "subdir")

	require.NoError(t, TouchDir(newDir))
	info, err := os.Stat(newDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	t.Run("file in the way", func(t *testing.T) {
		path := filepath.Join(tmpDir, "file")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		err := TouchDir(filepath.Join(path, "sub"))
		assert.Error(t, err)
	})
}

func TestEnsureConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	require.NoError(t, EnsureConfigFile(tmpDir))
	path := filepath.Join(tmpDir, ".config", "taxseed", "config.yaml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, templates.ConfigYAML, string(data))

	t.Run("keeps existing file", func(t *testing.T) {
		custom := []byte("log:\n  level: debug\n")
		require.NoError(t, os.WriteFile(path, custom, 0644))
		require.NoError(t, EnsureConfigFile(tmpDir))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, custom, data)
	})
}

func TestWriteAtomic(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out", "seed.sql")

	err := WriteAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "-- first\n")
		return err
	})
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "-- first\n", string(data))
	assert.True(t, FileExists(path))

	t.Run("failure keeps previous content", func(t *testing.T) {
		boom := errors.New("boom")
		err := WriteAtomic(path, func(w io.Writer) error {
			_, _ = io.WriteString(w, "-- partial")
			return boom
		})
		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.ErrorIs(t, gnErr.Err, boom)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "-- first\n", string(data))
	})

	t.Run("no temporary files left", func(t *testing.T) {
		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "seed.sql", entries[0].Name())
	})
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	assert.False(t, FileExists(filepath.Join(tmpDir, "none")))
	assert.False(t, FileExists(tmpDir), "directory is not a file")
}
