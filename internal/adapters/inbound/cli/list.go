package cli

import (
	"fmt"

	"github.com/prodcat/prodcat/internal/adapters/outbound/tui"
	"github.com/prodcat/prodcat/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every product in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, flags, true)
			if err != nil {
				return err
			}
			defer s.close()

			lf, err := listFormat(format, s.cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProducts(s.svc.Products(), lf))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: table, markdown, csv or plain (default from config)")

	return cmd
}

// listFormat picks the --format value when given, the configured one otherwise.
func listFormat(flag string, cfg domain.Config) (domain.ListFormat, error) {
	if flag == "" {
		return cfg.ListFormat, nil
	}
	lf := domain.ListFormat(flag)
	if err := (domain.Config{ListFormat: lf}).Validate(); err != nil {
		return "", err
	}
	return lf, nil
}
