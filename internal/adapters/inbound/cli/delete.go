package cli

import (
	"fmt"

	"github.com/prodcat/prodcat/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newDeleteCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product and save the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s, err := openSession(cmd, flags, true)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.svc.Delete(id); err != nil {
				return err
			}
			if err := s.svc.Save(); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.Success(fmt.Sprintf("Deleted product %d.", id)))
			return nil
		},
	}
}
