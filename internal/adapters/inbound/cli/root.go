package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath  string
	catalogPath string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "prodcat",
		Short: "Manage a retail product catalog",
		Long:  "prodcat keeps a product catalog in a comma-delimited file: list, find, search, add and delete products, interactively or one command at a time.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the configuration file (default ./prodcat.yaml)")
	cmd.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", "Catalog file (overrides catalog_file)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newFindCmd(flags))
	cmd.AddCommand(newSearchCmd(flags))
	cmd.AddCommand(newAddCmd(flags))
	cmd.AddCommand(newDeleteCmd(flags))
	cmd.AddCommand(newCategoriesCmd())
	cmd.AddCommand(newHistoryCmd(flags))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newShellCmd(flags))
	cmd.AddCommand(newMCPCmd(flags))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
