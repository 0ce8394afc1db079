// Package sources provides configuration and validation for corpus
// sources.
//
// This package defines the schema for sources.yaml, which lists the
// morphologically tagged texts to import. Each source names a file
// format and a glob of files. File system checks are left to the I/O
// layer (internal/iosources).
package sources

type Sources interface {
	Load() (*SourcesConfig, error)
}

// Format is the file format of a source.
type Format string

const (
	// MorphGNT is the SBLGNT MorphGNT line format, optionally xz
	// compressed.
	MorphGNT Format = "morphgnt"

	// OSHB is the Open Scriptures Hebrew Bible OSIS XML format.
	OSHB Format = "oshb"
)

// Formats lists supported formats.
func Formats() []Format {
	return []Format{MorphGNT, OSHB}
}

// SourcesConfig represents the complete sources.yaml configuration file.
type SourcesConfig struct {
	// Sources is the list of corpus sources to import.
	Sources []SourceConfig `yaml:"sources"`

	// Warnings holds non-fatal validation warnings (not serialized)
	Warnings []ValidationWarning `yaml:"-"`
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	SourceID   int    // ID of the source
	Field      string // Field name that has the issue
	Message    string // Description of the issue
	Suggestion string // How to fix it
}

// SourceConfig represents configuration for a single source.
type SourceConfig struct {
	// ID identifies the source, used by `import -s`.
	ID int `yaml:"id"`

	// Format is morphgnt or oshb.
	Format Format `yaml:"format"`

	// Path is a doublestar glob, for example ~/data/morphhb/wlc/*.xml.
	// A leading ~ is expanded to the home directory.
	Path string `yaml:"path"`

	// Title is a human-readable name of the source.
	Title string `yaml:"title,omitempty"`

	// Description is a longer note about the source.
	Description string `yaml:"description,omitempty"`
}

// Label returns the title of a source or its ID when the title is empty.
func (s SourceConfig) Label() string {
	if s.Title != "" {
		return s.Title
	}
	return "source " + itoa(s.ID)
}
