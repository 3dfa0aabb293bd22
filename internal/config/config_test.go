package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, `
[analysis]
source_type = "module"
typescript = false

[run]
jobs = 4
`)
	nested := filepath.Join(root, "src", "lib")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	m, ok, err := Load(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, path, m.Path)
	assert.Equal(t, root, m.Root)
	assert.Equal(t, SourceModule, m.Config.Analysis.SourceType)
	assert.False(t, m.Config.Analysis.TypeScript)
	assert.Equal(t, 4, m.Config.Run.Jobs)
	// untouched keys keep defaults
	assert.True(t, m.Config.Analysis.EarlyErrors)
	assert.Equal(t, "pretty", m.Config.Output.Format)
}

func TestLoadWithoutManifest(t *testing.T) {
	m, ok, err := Load(t.TempDir())
	require.NoError(t, err)
	if ok {
		t.Skip("a jsbind.toml exists above the temp dir")
	}
	assert.Equal(t, Default(), m.Config)
	assert.Empty(t, m.Path)
}

func TestLoadFileRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad toml", "[analysis\n", "failed to parse TOML"},
		{"unknown key", "[analysis]\nbogus = 1\n", "unknown keys: analysis.bogus"},
		{"bad source type", "[analysis]\nsource_type = \"commonjs\"\n", "source_type"},
		{"bad format", "[output]\nformat = \"xml\"\n", "[output].format"},
		{"negative jobs", "[run]\njobs = -1\n", "[run].jobs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.body)
			_, err := LoadFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}
