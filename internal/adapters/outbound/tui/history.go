package tui

import (
	"fmt"
	"strings"

	"github.com/prodcat/prodcat/internal/domain"
)

// RenderHistory formats the save history for terminal output.
func RenderHistory(entries []domain.SaveEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No save history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Save History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.ShortHash()
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			titleStyle.Render(fmt.Sprintf("%d products", e.ProductCount)),
			dimStyle.Render(e.CatalogFile),
		)

		if i > 0 {
			diff := e.ProductCount - entries[i-1].ProductCount
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
