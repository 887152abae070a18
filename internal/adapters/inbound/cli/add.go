package cli

import (
	"fmt"

	"github.com/prodcat/prodcat/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newAddCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <id> <name> <type> <quantity> <price>",
		Short: "Add a product and save the catalog",
		Long:  "Load the catalog, add one product and write the catalog back. The price may use a comma as decimal separator.",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, flags, true)
			if err != nil {
				return err
			}
			defer s.close()

			p, err := s.svc.AddFields(args[0], args[1], args[2], args[3], args[4])
			if err != nil {
				return err
			}
			if err := s.svc.Save(); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.Success(fmt.Sprintf("Added %s.", p)))
			return nil
		},
	}
}
