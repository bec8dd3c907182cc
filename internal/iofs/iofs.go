// Package iofs handles file system chores: application directories, the
// initial config file and atomic writes of generated artifacts.
package iofs

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/gnames/taxseed/pkg/config"
	"github.com/gnames/taxseed/pkg/templates"
)

// EnsureDirs creates config and log directories under homeDir.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := TouchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// TouchDir creates dir with its parents unless it exists already.
func TouchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the embedded config.yaml template to the config
// directory. An existing file is never overwritten.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if FileExists(configPath) {
		return nil
	}

	err := os.WriteFile(configPath, []byte(templates.ConfigYAML), 0644)
	if err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// WriteAtomic creates path with the content produced by fn. The content goes
// to a temporary file in the same directory first and is renamed into place
// only when fn and all writes succeed, so path either keeps its previous
// content or gets the complete new one.
func WriteAtomic(path string, fn func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := TouchDir(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return WriteFileError(path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	w := bufio.NewWriter(tmp)
	if err = fn(w); err == nil {
		err = w.Flush()
	}
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return WriteFileError(path, err)
	}

	if err = os.Chmod(tmpPath, 0644); err != nil {
		return WriteFileError(path, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
