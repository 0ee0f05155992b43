package slidedoc

import (
	"context"
	"path"
	"strings"
)

// DocumentSpec describes one source deck and where its markdown goes.
type DocumentSpec struct {
	// Source is the HTML file name, resolved against Config.SourceDir.
	Source string `yaml:"source"`

	// Destination is a slash-separated path relative to Config.ContentDir,
	// e.g. "overview/overview.md".
	Destination string `yaml:"destination"`

	// Title becomes the front matter title.
	Title string `yaml:"title"`
}

// Validate returns an error if the spec contains invalid fields.
func (s *DocumentSpec) Validate() error {
	if s.Source == "" {
		return Errorf(EINVALID, "document source required")
	}
	if s.Destination == "" {
		return Errorf(EINVALID, "document destination required for %q", s.Source)
	}
	if path.Ext(s.Destination) != ".md" {
		return Errorf(EINVALID, "document destination %q must end in .md", s.Destination)
	}
	if s.Title == "" {
		return Errorf(EINVALID, "document title required for %q", s.Source)
	}
	return nil
}

// Category returns the first segment of the destination path. Categories
// map to the documentation site's sidebar groups.
func (s *DocumentSpec) Category() string {
	dest := strings.TrimPrefix(path.Clean(s.Destination), "/")
	if i := strings.IndexByte(dest, '/'); i >= 0 {
		return dest[:i]
	}
	return ""
}

// LinkTarget returns the site-relative link other documents use to
// reference this one: "../" plus the lower-cased destination without its
// markdown extension.
func (s *DocumentSpec) LinkTarget() string {
	dest := strings.TrimPrefix(path.Clean(s.Destination), "/")
	return "../" + strings.ToLower(strings.TrimSuffix(dest, ".md"))
}

// Document is a finished markdown document ready to be written.
type Document struct {
	Spec    *DocumentSpec
	Content string
}

// DocumentConverter converts a complete HTML document into markdown.
type DocumentConverter interface {
	// ConvertDocument returns the markdown for the given HTML.
	// Returns ECONVERTER if the converter fails or produces no output.
	ConvertDocument(ctx context.Context, html []byte) (string, error)
}

// DocumentStore reads source decks and writes converted documents.
type DocumentStore interface {
	// ReadSource returns the raw HTML of the spec's source file.
	// Returns ESOURCENOTFOUND if the file does not exist.
	ReadSource(ctx context.Context, spec *DocumentSpec) ([]byte, error)

	// WriteDocument writes doc to its destination, replacing any
	// existing file.
	WriteDocument(ctx context.Context, doc *Document) error

	// DocumentExists reports whether the spec's destination exists.
	DocumentExists(ctx context.Context, spec *DocumentSpec) (bool, error)
}
