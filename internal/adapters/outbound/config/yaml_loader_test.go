package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/prodcat/prodcat/internal/adapters/outbound/config"
	"github.com/prodcat/prodcat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, appconfig.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	loader := appconfig.New()

	cfg, err := loader.Load(filepath.Join(t.TempDir(), appconfig.FileName))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
catalog_file: stock.csv
log_level: debug
log_format: json
list_format: markdown
indent: 2
clear_screen: false
history: false
`)
	cfg, err := appconfig.New().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "stock.csv", cfg.CatalogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, domain.ListFormatMarkdown, cfg.ListFormat)
	assert.Equal(t, 2, cfg.IndentWidth())
	assert.False(t, cfg.ClearScreenEnabled())
	assert.False(t, cfg.HistoryEnabled())
}

func TestYAMLLoader_PartialFileMergesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `catalog_file: stock.csv`)

	cfg, err := appconfig.New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "stock.csv", cfg.CatalogFile)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, domain.ListFormatTable, cfg.ListFormat)
	assert.Equal(t, 3, cfg.IndentWidth())
	assert.True(t, cfg.HistoryEnabled())
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{{{invalid yaml`)

	_, err := appconfig.New().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestYAMLLoader_InvalidValue(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `list_format: html`)

	_, err := appconfig.New().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
	assert.Contains(t, err.Error(), "list_format")
}

func TestYAMLLoader_EmptyFileReturnsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")

	cfg, err := appconfig.New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_DefaultPathIsWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `catalog_file: here.csv`)
	t.Chdir(dir)

	cfg, err := appconfig.New().Load("")
	require.NoError(t, err)
	assert.Equal(t, "here.csv", cfg.CatalogFile)
}
