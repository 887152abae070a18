package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prodcat/prodcat/internal/adapters/outbound/config"
	"github.com/prodcat/prodcat/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a prodcat.yaml configuration file",
		Long:  "Create a prodcat.yaml holding the default settings, ready to edit.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig(domain.DefaultConfig())), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing prodcat.yaml")

	return cmd
}

func generateConfig(cfg domain.Config) string {
	return fmt.Sprintf(`# prodcat configuration

# Catalog file, relative to the working directory.
catalog_file: %s

# debug, info, warn or error. Logs go to stderr.
log_level: %s
# console or json
log_format: %s

# table, markdown, csv or plain
list_format: %s

# Interactive shell layout.
indent: %d
clear_screen: %t

# Record every save in .prodcat/history beside the catalog.
history: %t
`,
		cfg.CatalogFile,
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ListFormat,
		cfg.IndentWidth(),
		cfg.ClearScreenEnabled(),
		cfg.HistoryEnabled(),
	)
}
