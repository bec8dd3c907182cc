package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/taxseed/pkg/errcode"
	"github.com/gnames/taxseed/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var samplePath = filepath.Join("..", "testdata", "nacc_sample.csv")

// execute runs the root command with a temporary home directory and
// returns what was written to the command output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cmd := getRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestGetGenerateCmd(t *testing.T) {
	cmd := getGenerateCmd()
	assert.Equal(t, "generate", cmd.Use)
	assert.Contains(t, cmd.Short, "checklist")
	assert.Contains(t, cmd.Long, "seed_taxa_full.sql")
	assert.NotNil(t, cmd.RunE)

	for _, v := range []string{
		"input", "out-dir", "dialect", "test-size", "source", "format",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(v), v)
	}
}

func TestGenerateJSONReport(t *testing.T) {
	out := t.TempDir()
	stdout, err := execute(t, "generate",
		"-i", samplePath, "-o", out, "-t", "10", "-f", "json")
	require.NoError(t, err)

	var res lifecycle.GenerateReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, samplePath, res.Input)
	assert.Equal(t, "sqlite", res.Dialect)
	assert.Equal(t, 24, res.Checklist.Species)
	require.Len(t, res.Artifacts, 3)
	assert.Equal(t, 77, res.Artifacts[0].Taxa.Total)
	assert.Equal(t, 29, res.Artifacts[1].Taxa.Total)
	assert.Equal(t, 14, res.Artifacts[2].Statements)

	for _, v := range res.Artifacts {
		assert.FileExists(t, v.Path)
		assert.Equal(t, out, filepath.Dir(v.Path))
		assert.Len(t, v.Checksum, 16)
	}
}

func TestGenerateYAMLReport(t *testing.T) {
	out := t.TempDir()
	stdout, err := execute(t, "generate",
		"-i", samplePath, "-o", out, "--dialect", "postgres", "-f", "yaml")
	require.NoError(t, err)

	var res lifecycle.GenerateReport
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, "postgres", res.Dialect)

	data, err := os.ReadFile(filepath.Join(out, "seed_taxa_full.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "ON CONFLICT DO NOTHING;")
	assert.NotContains(t, string(data), "INSERT OR IGNORE")
}

func TestGenerateTextReport(t *testing.T) {
	out := t.TempDir()
	stdout, err := execute(t, "generate", "-i", samplePath, "-o", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.FileExists(t, filepath.Join(out, "seed_sightings.sql"))
}

func TestGenerateBadFormat(t *testing.T) {
	_, err := execute(t, "generate", "-i", samplePath,
		"-o", t.TempDir(), "-f", "xml")

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.ReportFormatError, gnErr.Code)
}

func TestGenerateMissingInput(t *testing.T) {
	out := t.TempDir()
	_, err := execute(t, "generate",
		"-i", filepath.Join(out, "none.csv"), "-o", out)

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.ChecklistNotFoundError, gnErr.Code)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
