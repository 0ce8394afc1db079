// Package iosources loads sources.yaml and resolves source globs on the
// file system.
package iosources

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jimiaki7/gegraptai/pkg/config"
	"github.com/jimiaki7/gegraptai/pkg/sources"
	"gopkg.in/yaml.v3"
)

type iosources struct {
	cfg  *config.Config
	path string
}

// New creates a sources loader reading sources.yaml from the config
// directory of cfg.HomeDir.
func New(cfg *config.Config) sources.Sources {
	return NewWithPath(cfg, config.SourcesFilePath(cfg.HomeDir))
}

// NewWithPath creates a sources loader for an explicit sources.yaml.
func NewWithPath(cfg *config.Config, path string) sources.Sources {
	res := iosources{cfg: cfg, path: path}
	return &res
}

// Load reads and validates sources.yaml. Paths are expanded against the
// home directory. Sources whose globs match no files produce warnings.
func (s *iosources) Load() (*sources.SourcesConfig, error) {
	sourcesConfig, err := loadSourcesConfig(s.path)
	if err != nil {
		return nil, SourcesConfigError(s.path, err)
	}

	if err = sourcesConfig.Validate(); err != nil {
		return nil, SourcesValidationError(s.path, err)
	}

	for i := range sourcesConfig.Sources {
		src := &sourcesConfig.Sources[i]
		src.Path = sources.ExpandHome(src.Path, s.cfg.HomeDir)

		files, err := Files(*src)
		if err != nil {
			return nil, SourcesValidationError(s.path, err)
		}
		if len(files) == 0 {
			sourcesConfig.Warnings = append(sourcesConfig.Warnings,
				sources.ValidationWarning{
					SourceID:   src.ID,
					Field:      "path",
					Message:    fmt.Sprintf("no files match %s", src.Path),
					Suggestion: "Check the path or download the source files",
				},
			)
		}
	}

	for _, w := range sourcesConfig.Warnings {
		slog.Warn("Sources configuration", "source", w.SourceID,
			"field", w.Field, "issue", w.Message)
	}
	return sourcesConfig, nil
}

// Files returns the sorted files matching the source path glob.
func Files(src sources.SourceConfig) ([]string, error) {
	files, err := doublestar.FilepathGlob(src.Path, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("source %d: bad path pattern %q: %w",
			src.ID, src.Path, err)
	}
	slices.Sort(files)
	return files, nil
}

func loadSourcesConfig(path string) (*sources.SourcesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources config file: %w", err)
	}

	var res sources.SourcesConfig
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to parse sources config file: %w", err)
	}
	return &res, nil
}
