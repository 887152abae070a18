package tui

import (
	"fmt"
	"iter"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/prodcat/prodcat/internal/domain"
)

// RenderProducts lists products in the requested format. An unknown format
// falls back to a table.
func RenderProducts(products iter.Seq[domain.Product], format domain.ListFormat) string {
	if format == domain.ListFormatPlain {
		return renderPlain(products)
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"ID", "Name", "Type", "Category", "Qty", "Price"})
	count := 0
	for p := range products {
		t.AppendRow(table.Row{p.ID(), p.Name(), string(p.TypeCode()), p.CategoryName(), p.Quantity(), p.PriceText()})
		count++
	}

	switch format {
	case domain.ListFormatMarkdown:
		return t.RenderMarkdown() + "\n"
	case domain.ListFormatCSV:
		return t.RenderCSV() + "\n"
	}

	if count == 0 {
		return dimStyle.Render("No products.") + "\n"
	}
	style := table.StyleRounded
	style.Format.Footer = text.FormatDefault
	t.SetStyle(style)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Qty", Align: text.AlignRight},
		{Name: "Price", Align: text.AlignRight},
	})
	t.AppendFooter(table.Row{"", "", "", "", "", fmt.Sprintf("%d products", count)})
	return t.Render() + "\n"
}

func renderPlain(products iter.Seq[domain.Product]) string {
	var b strings.Builder
	for p := range products {
		b.WriteString(p.String())
		b.WriteString("\n")
	}
	return b.String()
}
