package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/prodcat/prodcat/internal/domain"
)

const historyFile = ".prodcat/history/saves.json"

// FileHistory implements domain.SaveHistory using JSON file storage kept
// next to the catalog file.
type FileHistory struct {
	dir string
}

// New stores history under dir, normally the catalog file's directory.
func New(dir string) *FileHistory {
	return &FileHistory{dir: dir}
}

// ForCatalog stores history beside the given catalog file.
func ForCatalog(catalogPath string) *FileHistory {
	return New(filepath.Dir(catalogPath))
}

func (h *FileHistory) Append(entry domain.SaveEntry) error {
	entries, err := h.Load()
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(h.dir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load() ([]domain.SaveEntry, error) {
	fp := filepath.Join(h.dir, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.SaveEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
