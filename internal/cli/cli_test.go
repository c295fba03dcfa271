package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/extents/internal/paths"
	"github.com/mesh-intelligence/extents/pkg/types"
)

type env struct {
	configDir string
	dataDir   string
}

func newEnv(t *testing.T) env {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, "")
	t.Setenv(paths.EnvDataDir, "")
	root := t.TempDir()
	return env{
		configDir: filepath.Join(root, "config"),
		dataDir:   filepath.Join(root, "data"),
	}
}

func (e env) exec(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	full := append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...)
	code := run(root, full, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestVersion(t *testing.T) {
	out, _, code := newEnv(t).exec(t, "version")

	assert.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "extents v"+Version)
	assert.Contains(t, out, modulePath)
}

func TestInitWritesConfigOnce(t *testing.T) {
	e := newEnv(t)

	out, _, code := e.exec(t, "init")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "wrote")

	data, err := os.ReadFile(paths.ConfigFile(e.configDir))
	require.NoError(t, err)
	var cfg configFile
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, types.BackendJSONL, cfg.Backend)
	assert.Equal(t, e.dataDir, cfg.DataDir)
	assert.DirExists(t, e.dataDir)

	out, _, code = e.exec(t, "init")
	require.Equal(t, exitSuccess, code)
	assert.NotContains(t, out, "wrote")
}

func TestSeedListCheckStats(t *testing.T) {
	e := newEnv(t)

	out, stderr, code := e.exec(t, "seed")
	require.Equal(t, exitSuccess, code, stderr)
	assert.Contains(t, out, "seeded")
	assert.FileExists(t, filepath.Join(e.dataDir, "Posts.jsonl"))
	assert.FileExists(t, filepath.Join(e.dataDir, "Links.jsonl"))

	out, _, code = e.exec(t, "list", types.PostsExtent)
	require.Equal(t, exitSuccess, code)
	var posts []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &posts))
	assert.Len(t, posts, 2)
	assert.EqualValues(t, 1, posts[0]["post_id"])

	out, _, code = e.exec(t, "check")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "ok\n", out)

	out, _, code = e.exec(t, "stats")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, types.AccountsExtent)
	assert.Contains(t, out, types.LinkPostMedia)
	assert.NotContains(t, out, "SAVE ID")
}

func TestSeedRefusesToOverwrite(t *testing.T) {
	e := newEnv(t)
	_, _, code := e.exec(t, "seed")
	require.Equal(t, exitSuccess, code)

	_, stderr, code := e.exec(t, "seed")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, stderr, "--force")

	_, _, code = e.exec(t, "seed", "--force")
	assert.Equal(t, exitSuccess, code)
}

func TestSQLiteBackend(t *testing.T) {
	e := newEnv(t)

	_, stderr, code := e.exec(t, "--backend", types.BackendSQLite, "seed")
	require.Equal(t, exitSuccess, code, stderr)
	assert.FileExists(t, filepath.Join(e.dataDir, "extents.db"))

	out, _, code := e.exec(t, "--backend", types.BackendSQLite, "list", types.AccountsExtent)
	require.Equal(t, exitSuccess, code)
	var accounts []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &accounts))
	assert.Len(t, accounts, 2)

	out, _, code = e.exec(t, "--backend", types.BackendSQLite, "check")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "ok\n", out)

	out, _, code = e.exec(t, "--backend", types.BackendSQLite, "stats")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "SAVE ID")
	assert.Regexp(t, `(?m)^Links\s+[0-9a-f-]{36}\s`, out)
}

func TestUserErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown extent", args: []string{"list", "Widgets"}},
		{name: "unknown backend", args: []string{"--backend", "yaml", "stats"}},
		{name: "missing argument", args: []string{"list"}},
		{name: "unknown command", args: []string{"frobnicate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := newEnv(t).exec(t, tt.args...)
			assert.Equal(t, exitUserError, code)
			assert.NotEmpty(t, stderr)
		})
	}
}

func TestConfigFileSelectsBackend(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, os.MkdirAll(e.configDir, 0o755))
	require.NoError(t, os.WriteFile(paths.ConfigFile(e.configDir), []byte("backend: sqlite\n"), 0o644))

	_, stderr, code := e.exec(t, "seed")
	require.Equal(t, exitSuccess, code, stderr)
	assert.FileExists(t, filepath.Join(e.dataDir, "extents.db"))
}

func TestDataDirFromConfig(t *testing.T) {
	e := newEnv(t)
	custom := filepath.Join(t.TempDir(), "elsewhere")
	require.NoError(t, os.MkdirAll(e.configDir, 0o755))
	require.NoError(t, os.WriteFile(paths.ConfigFile(e.configDir), []byte("data_dir: "+custom+"\n"), 0o644))

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	code := run(root, []string{"--config-dir", e.configDir, "seed"}, &stderr)

	require.Equal(t, exitSuccess, code, stderr.String())
	assert.FileExists(t, filepath.Join(custom, "Posts.jsonl"))
}
