package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prodcat/prodcat/internal/adapters/outbound/history"
	"github.com/prodcat/prodcat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_AppendAndLoad(t *testing.T) {
	h := history.New(t.TempDir())

	entry := domain.SaveEntry{
		Timestamp:    "2026-10-19T10:00:00Z",
		CatalogFile:  "produtos.csv",
		ProductCount: 12,
		CommitHash:   "abc1234",
	}
	require.NoError(t, h.Append(entry))

	entries, err := h.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestHistory_AppendMultiple(t *testing.T) {
	h := history.New(t.TempDir())

	require.NoError(t, h.Append(domain.SaveEntry{Timestamp: "t1", ProductCount: 1}))
	require.NoError(t, h.Append(domain.SaveEntry{Timestamp: "t2", ProductCount: 2}))
	require.NoError(t, h.Append(domain.SaveEntry{Timestamp: "t3", ProductCount: 3}))

	entries, err := h.Load()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].ProductCount)
	assert.Equal(t, 3, entries[2].ProductCount)
}

func TestHistory_LoadEmpty(t *testing.T) {
	entries, err := history.New(t.TempDir()).Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_ForCatalogUsesCatalogDirectory(t *testing.T) {
	dir := t.TempDir()
	h := history.ForCatalog(filepath.Join(dir, "produtos.csv"))
	require.NoError(t, h.Append(domain.SaveEntry{Timestamp: "t1"}))

	_, err := os.Stat(filepath.Join(dir, ".prodcat", "history", "saves.json"))
	assert.NoError(t, err)
}

func TestHistory_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, ".prodcat", "history", "saves.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
	require.NoError(t, os.WriteFile(fp, []byte("not json"), 0644))

	_, err := history.New(dir).Load()
	assert.Error(t, err)
}
