package cli

import (
	"fmt"

	"github.com/prodcat/prodcat/internal/adapters/outbound/tui"
	"github.com/prodcat/prodcat/internal/domain"
	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"types"},
		Short:   "List the known product types",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCategories(domain.Categories()))
			return nil
		},
	}
}
