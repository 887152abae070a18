package domain

import "iter"

// CatalogStore reads and replaces the persisted catalog.
type CatalogStore interface {
	// Lines yields the relevant (non-blank, non-comment) lines of the
	// catalog. Each call starts a new pass.
	Lines() iter.Seq2[string, error]
	// WriteAll replaces the stored catalog with text.
	WriteAll(text string) error
	// Location identifies the store for messages and history.
	Location() string
}

// ConfigLoader loads prodcat.yaml.
type ConfigLoader interface {
	Load(path string) (Config, error)
}

// SaveHistory records successful catalog saves.
type SaveHistory interface {
	Append(entry SaveEntry) error
	Load() ([]SaveEntry, error)
}

// GitInfo looks up version control details for a path.
type GitInfo interface {
	CommitHash(path string) (string, error)
}
