// Package fs provides file-based storage for source decks and converted documents.
package fs

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/slidedoc"
)

// Ensure Store implements slidedoc.DocumentStore at compile time.
var _ slidedoc.DocumentStore = (*Store)(nil)

// Store reads sources from one directory and writes documents under the
// documentation content tree.
type Store struct {
	sourceDir  string
	contentDir string
}

// NewStore creates a Store. Both directories are resolved by the caller
// once at startup.
func NewStore(sourceDir, contentDir string) *Store {
	return &Store{sourceDir: sourceDir, contentDir: contentDir}
}

// SourcePath returns the file path of spec's source deck.
func (s *Store) SourcePath(spec *slidedoc.DocumentSpec) string {
	return filepath.Join(s.sourceDir, spec.Source)
}

// DestinationPath returns the file path spec is written to.
func (s *Store) DestinationPath(spec *slidedoc.DocumentSpec) string {
	return filepath.Join(s.contentDir, filepath.FromSlash(spec.Destination))
}

// ReadSource reads the spec's source deck.
func (s *Store) ReadSource(ctx context.Context, spec *slidedoc.DocumentSpec) ([]byte, error) {
	path := s.SourcePath(spec)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, slidedoc.Errorf(slidedoc.ESOURCENOTFOUND, "source %q not found", path)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// WriteDocument writes doc to its destination, creating parent
// directories. The file is closed on every path; a failed write can leave a
// truncated file behind.
func (s *Store) WriteDocument(ctx context.Context, doc *slidedoc.Document) (err error) {
	if err := doc.Spec.Validate(); err != nil {
		return err
	}

	path := s.DestinationPath(doc.Spec)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.WriteString(f, doc.Content)
	return err
}

// DocumentExists reports whether the spec's destination file exists.
func (s *Store) DocumentExists(ctx context.Context, spec *slidedoc.DocumentSpec) (bool, error) {
	_, err := os.Stat(s.DestinationPath(spec))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
