package iosources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jimiaki7/gegraptai/pkg/config"
	"github.com/jimiaki7/gegraptai/pkg/sources"
	"github.com/jimiaki7/gegraptai/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func testConfig(home string) *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(home)})
	return cfg
}

func TestLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	home := t.TempDir()

	writeFile(t, filepath.Join(home, "data", "wlc", "Gen.xml"), "<osis/>")
	writeFile(t, filepath.Join(home, "data", "wlc", "Exod.xml"), "<osis/>")
	writeFile(t, filepath.Join(home, "data", "gnt", "nested", "61-Mt-morphgnt.txt"), "")

	yamlContent := `
sources:
  - id: 1
    format: oshb
    path: ~/data/wlc/*.xml
    title: WLC
  - id: 2
    format: morphgnt
    path: ~/data/gnt/**/*-morphgnt.txt
    title: SBLGNT
  - id: 3
    format: morphgnt
    path: ~/data/missing/*.txt
    title: Missing
`
	path := filepath.Join(home, "sources.yaml")
	writeFile(t, path, yamlContent)

	res, err := NewWithPath(testConfig(home), path).Load()
	require.NoError(t, err)
	require.Len(t, res.Sources, 3)

	src := res.Sources[0]
	assert.Equal(t, filepath.Join(home, "data", "wlc", "*.xml"), src.Path)
	assert.Equal(t, sources.OSHB, src.Format)

	files, err := Files(src)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(home, "data", "wlc", "Exod.xml"),
		filepath.Join(home, "data", "wlc", "Gen.xml"),
	}, files)

	files, err = Files(res.Sources[1])
	require.NoError(t, err)
	assert.Len(t, files, 1)

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 3, res.Warnings[0].SourceID)
	assert.Equal(t, "path", res.Warnings[0].Field)
}

func TestLoad_DefaultLocation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	home := t.TempDir()
	writeFile(t, config.SourcesFilePath(home), templates.SourcesYAML)

	res, err := New(testConfig(home)).Load()
	require.NoError(t, err)
	assert.Len(t, res.Sources, 2)
	// template globs point to files that do not exist yet
	assert.Len(t, res.Warnings, 2)
}

func TestLoad_Errors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	home := t.TempDir()

	tests := []struct {
		msg     string
		content string
	}{
		{"bad yaml", "sources: [\n"},
		{"no sources", "sources: []\n"},
		{"bad format", "sources:\n  - id: 1\n    format: usfm\n    path: x\n"},
		{"bad glob", "sources:\n  - id: 1\n    format: oshb\n    path: /data/[\n"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			path := filepath.Join(home, v.msg+".yaml")
			writeFile(t, path, v.content)
			_, err := NewWithPath(testConfig(home), path).Load()
			assert.Error(t, err)
		})
	}

	_, err := NewWithPath(testConfig(home), filepath.Join(home, "none.yaml")).Load()
	assert.Error(t, err)
}

func TestLoadSourcesConfig_FileNotFound(t *testing.T) {
	_, err := loadSourcesConfig("nonexistent.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read sources config file")
}
