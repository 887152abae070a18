package cli

import (
	"fmt"

	"github.com/prodcat/prodcat/internal/adapters/outbound/tui"
	"github.com/prodcat/prodcat/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type searchFlags struct {
	name     string
	typeCode string
	minQty   int
	maxQty   int
	minPrice string
	maxPrice string
	format   string
}

func newSearchCmd(flags *globalFlags) *cobra.Command {
	var f searchFlags

	cmd := &cobra.Command{
		Use:   "search",
		Short: "List the products matching every given filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pred, err := f.predicate(cmd)
			if err != nil {
				return err
			}

			s, err := openSession(cmd, flags, true)
			if err != nil {
				return err
			}
			defer s.close()

			lf, err := listFormat(f.format, s.cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProducts(s.svc.Search(pred).All(), lf))
			return nil
		},
	}

	cmd.Flags().StringVar(&f.name, "name", "", "Name contains (case-insensitive)")
	cmd.Flags().StringVar(&f.typeCode, "type", "", "Product type code (AL, DL, FRL)")
	cmd.Flags().IntVar(&f.minQty, "min-qty", 0, "Minimum quantity")
	cmd.Flags().IntVar(&f.maxQty, "max-qty", 0, "Maximum quantity")
	cmd.Flags().StringVar(&f.minPrice, "min-price", "", "Minimum price")
	cmd.Flags().StringVar(&f.maxPrice, "max-price", "", "Maximum price")
	cmd.Flags().StringVar(&f.format, "format", "", "Output format: table, markdown, csv or plain (default from config)")

	return cmd
}

// predicate combines the filters the user actually set.
func (f searchFlags) predicate(cmd *cobra.Command) (domain.Predicate, error) {
	var preds []domain.Predicate

	if f.name != "" {
		preds = append(preds, domain.NameContains(f.name))
	}
	if f.typeCode != "" {
		if _, ok := domain.ParseTypeCode(f.typeCode); !ok {
			return nil, fmt.Errorf("unknown product type %q", f.typeCode)
		}
		preds = append(preds, domain.OfType(f.typeCode))
	}
	if cmd.Flags().Changed("min-qty") {
		preds = append(preds, domain.MinQuantity(f.minQty))
	}
	if cmd.Flags().Changed("max-qty") {
		preds = append(preds, domain.MaxQuantity(f.maxQty))
	}
	if f.minPrice != "" {
		d, err := parsePriceFlag("min-price", f.minPrice)
		if err != nil {
			return nil, err
		}
		preds = append(preds, domain.MinPrice(d))
	}
	if f.maxPrice != "" {
		d, err := parsePriceFlag("max-price", f.maxPrice)
		if err != nil {
			return nil, err
		}
		preds = append(preds, domain.MaxPrice(d))
	}

	return domain.MatchAll(preds...), nil
}

func parsePriceFlag(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(domain.NormalizeDecimalInput(value))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid --%s %q", name, value)
	}
	return d, nil
}
