package storage

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// FileStore implements domain.CatalogStore over one catalog file.
type FileStore struct {
	path string
}

// New creates a FileStore for the catalog at path.
func New(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Location() string { return s.path }

// Lines opens the catalog file for each pass. A missing file yields no
// lines so that a first session starts with an empty catalog.
func (s *FileStore) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		f, err := os.Open(s.path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return
			}
			yield("", fmt.Errorf("opening catalog: %w", err))
			return
		}
		defer f.Close()

		for line, err := range ReadRelevantLines(f) {
			if !yield(line, err) {
				return
			}
		}
	}
}

// WriteAll replaces the catalog file with text. The data goes to a
// temporary file in the same directory which is then renamed over the
// destination, so a failed write leaves the previous catalog in place.
func (s *FileStore) WriteAll(text string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating catalog directory: %w", err)
	}
	if err := renameio.WriteFile(s.path, []byte(text), 0644); err != nil {
		return fmt.Errorf("replacing catalog: %w", err)
	}
	return nil
}
