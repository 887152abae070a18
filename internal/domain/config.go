package domain

import "fmt"

// ListFormat selects how product listings are rendered.
type ListFormat string

const (
	ListFormatTable    ListFormat = "table"
	ListFormatMarkdown ListFormat = "markdown"
	ListFormatCSV      ListFormat = "csv"
	ListFormatPlain    ListFormat = "plain"
)

// ValidListFormats enumerates all recognized list formats.
var ValidListFormats = []ListFormat{
	ListFormatTable,
	ListFormatMarkdown,
	ListFormatCSV,
	ListFormatPlain,
}

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"console", "json"}
)

const maxIndent = 16

// Config holds settings loaded from prodcat.yaml.
type Config struct {
	CatalogFile string     `yaml:"catalog_file" json:"catalog_file"`
	LogLevel    string     `yaml:"log_level"    json:"log_level"`
	LogFormat   string     `yaml:"log_format"   json:"log_format"`
	ListFormat  ListFormat `yaml:"list_format"  json:"list_format"`
	Indent      *int       `yaml:"indent"       json:"indent,omitempty"`
	ClearScreen *bool      `yaml:"clear_screen" json:"clear_screen,omitempty"`
	History     *bool      `yaml:"history"      json:"history,omitempty"`
}

// DefaultConfig returns the settings used when no prodcat.yaml exists.
func DefaultConfig() Config {
	indent := 3
	clearScreen := true
	history := true
	return Config{
		CatalogFile: "produtos.csv",
		LogLevel:    "warn",
		LogFormat:   "console",
		ListFormat:  ListFormatTable,
		Indent:      &indent,
		ClearScreen: &clearScreen,
		History:     &history,
	}
}

// Merge overlays the explicitly set values of override on c.
func (c Config) Merge(override Config) Config {
	result := c
	if override.CatalogFile != "" {
		result.CatalogFile = override.CatalogFile
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.LogFormat != "" {
		result.LogFormat = override.LogFormat
	}
	if override.ListFormat != "" {
		result.ListFormat = override.ListFormat
	}
	if override.Indent != nil {
		result.Indent = override.Indent
	}
	if override.ClearScreen != nil {
		result.ClearScreen = override.ClearScreen
	}
	if override.History != nil {
		result.History = override.History
	}
	return result
}

// Validate checks the explicitly set values and returns a descriptive error.
func (c Config) Validate() error {
	if c.LogLevel != "" && !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}

	if c.LogFormat != "" && !contains(validLogFormats, c.LogFormat) {
		return fmt.Errorf("unknown log_format %q (valid: console, json)", c.LogFormat)
	}

	if c.ListFormat != "" && !contains(ValidListFormats, c.ListFormat) {
		return fmt.Errorf("unknown list_format %q (valid: table, markdown, csv, plain)", c.ListFormat)
	}

	if c.Indent != nil && (*c.Indent < 0 || *c.Indent > maxIndent) {
		return fmt.Errorf("indent must be between 0 and %d (got %d)", maxIndent, *c.Indent)
	}

	return nil
}

// IndentWidth returns the configured indentation, defaulting to 3.
func (c Config) IndentWidth() int {
	if c.Indent == nil {
		return 3
	}
	return *c.Indent
}

func (c Config) ClearScreenEnabled() bool { return c.ClearScreen == nil || *c.ClearScreen }

func (c Config) HistoryEnabled() bool { return c.History == nil || *c.History }

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
