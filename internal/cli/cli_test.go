package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupProject creates a working directory with src/ descriptors and chdirs into it.
func setupProject(t *testing.T, files map[string]string) string {
	t.Helper()
	work := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(work, "src"), 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(work, "src", name), []byte(content), 0o644))
	}
	t.Chdir(work)
	return work
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(buildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_BuildsWithoutArguments(t *testing.T) {
	work := setupProject(t, map[string]string{
		"a.json": `{"identifier":"zeta","meta":{"tags":["x"]}}`,
		"b.json": `{"identifier":"alpha","meta":{"tags":["y","x"]}}`,
	})

	stdout, _, err := run(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Built 2 extensions to public/index.json")
	assert.Contains(t, lines[1], "Total tags: 2")
	assert.FileExists(t, filepath.Join(work, "public", "index.json"))
}

func TestBuild_EmptySource(t *testing.T) {
	setupProject(t, nil)

	stdout, _, err := run(t, "build")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Built 0 extensions")
	assert.Contains(t, stdout, "Total tags: 0")
}

func TestBuild_PackageFlag(t *testing.T) {
	work := setupProject(t, map[string]string{"a.json": `{"identifier":"a"}`})
	require.NoError(t, os.WriteFile(filepath.Join(work, "package.json"),
		[]byte(`{"name":"@acme/ext-store","version":"2.3.1"}`), 0o644))

	_, _, err := run(t, "--package", "package.json", "--out", "dist/index.json")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(work, "dist", "index.json"))
	require.NoError(t, err)
	var doc struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "@acme/ext-store", doc.Name)
	assert.Equal(t, "2.3.1", doc.Version)
}

func TestBuild_MalformedDescriptorFails(t *testing.T) {
	work := setupProject(t, map[string]string{"bad.json": `{`})

	stdout, _, err := run(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
	assert.Empty(t, stdout)
	assert.NoFileExists(t, filepath.Join(work, "public", "index.json"))
}

func TestBuild_VerboseLogsToStderr(t *testing.T) {
	setupProject(t, map[string]string{"a.json": `{"identifier":"a"}`})

	stdout, stderr, err := run(t, "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "[VERBOSE] reading")
	assert.NotContains(t, stdout, "[VERBOSE]")
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	work := setupProject(t, map[string]string{
		"ok.json":     `{"identifier":"ok"}`,
		"broken.json": `{`,
		"empty.json":  `{"identifier":""}`,
	})

	stdout, _, err := run(t, "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 problem(s) found")
	assert.Contains(t, stdout, "broken.json")
	assert.Contains(t, stdout, "empty.json")
	assert.NoFileExists(t, filepath.Join(work, "public", "index.json"))
}

func TestValidate_AllValid(t *testing.T) {
	setupProject(t, map[string]string{
		"a.json": `{"identifier":"a","meta":{"tags":["t"]}}`,
	})

	stdout, _, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 descriptors valid, 1 tags")
}

func TestList_ReadsBuiltIndex(t *testing.T) {
	setupProject(t, map[string]string{
		"a.json": `{"identifier":"alpha","meta":{"tags":["x"]}}`,
		"b.json": `{"identifier":"beta","meta":{"tags":["y"]}}`,
	})
	_, _, err := run(t)
	require.NoError(t, err)

	stdout, _, err := run(t, "list", "--tag", "y")
	require.NoError(t, err)
	assert.Contains(t, stdout, "@nothing/marketplace@1.0.0")
	assert.Contains(t, stdout, "beta")
	assert.NotContains(t, stdout, "alpha")
}

func TestList_MissingIndex(t *testing.T) {
	setupProject(t, nil)

	_, _, err := run(t, "list")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"version", "--short"}, "1.2.3\n"},
		{[]string{"version"}, "marketplace version 1.2.3 (commit: abc123, built: 2026-01-01)\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			stdout, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestVersion_JSON(t *testing.T) {
	stdout, _, err := run(t, "version", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc123","date":"2026-01-01"}`, stdout)
}
