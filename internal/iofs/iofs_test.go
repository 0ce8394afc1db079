package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jimiaki7/gegraptai/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	home := t.TempDir()

	// repeated calls must succeed
	for range 3 {
		require.NoError(t, EnsureDirs(home))
	}

	dirs := []string{
		filepath.Join(home, ".config", "gegraptai"),
		filepath.Join(home, ".cache", "gegraptai"),
		filepath.Join(home, ".cache", "gegraptai", "sources"),
		filepath.Join(home, ".local", "share", "gegraptai"),
		filepath.Join(home, ".local", "share", "gegraptai", "logs"),
	}
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), dir)
	}
}

func TestTouchDir(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	tmp := t.TempDir()

	t.Run("creates nested directory", func(t *testing.T) {
		dir := filepath.Join(tmp, "a", "b")
		require.NoError(t, touchDir(dir))
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("fails when path is a file", func(t *testing.T) {
		file := filepath.Join(tmp, "plain")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
		err := touchDir(filepath.Join(file, "sub"))
		assert.Error(t, err)
	})
}

func TestEnsureFiles(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tests := []struct {
		name     string
		ensure   func(string) error
		file     string
		template string
	}{
		{"config", EnsureConfigFile, "config.yaml", templates.ConfigYAML},
		{"sources", EnsureSourcesFile, "sources.yaml", templates.SourcesYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			require.NoError(t, EnsureDirs(home))
			require.NoError(t, tt.ensure(home))

			path := filepath.Join(home, ".config", "gegraptai", tt.file)
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.template, string(content))

			// existing file is not overwritten
			custom := "# edited\n"
			require.NoError(t, os.WriteFile(path, []byte(custom), 0644))
			require.NoError(t, tt.ensure(home))
			content, err = os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, custom, string(content))
		})
	}
}

func TestTemplatesEmbedded(t *testing.T) {
	assert.Contains(t, templates.ConfigYAML, "store:")
	assert.Contains(t, templates.ConfigYAML, "log:")
	assert.Contains(t, templates.ConfigYAML, "output:")
	assert.Contains(t, templates.SourcesYAML, "sources:")
	assert.Contains(t, templates.SourcesYAML, "format: morphgnt")
	assert.Contains(t, templates.SourcesYAML, "format: oshb")
}
