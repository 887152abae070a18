package cli

import (
	"fmt"
	"strconv"

	"github.com/prodcat/prodcat/internal/adapters/outbound/tui"
	"github.com/prodcat/prodcat/internal/domain"
	"github.com/spf13/cobra"
)

func newFindCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "find <id>",
		Short: "Show one product by id",
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

			p, ok := s.svc.Find(id)
			if !ok {
				return fmt.Errorf("%w: id %d", domain.ErrProductNotFound, id)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProduct(p))
			return nil
		},
	}
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
