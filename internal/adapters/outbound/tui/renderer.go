package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/prodcat/prodcat/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	keyStyle      = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	labelStyle    = lipgloss.NewStyle().Foreground(dim)
)

// MenuOption is one entry of the interactive menu.
type MenuOption struct {
	Key   string
	Label string
}

// RenderMenu draws the main menu box.
func RenderMenu(title string, options []MenuOption) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")
	for _, o := range options {
		fmt.Fprintf(&b, "%s  %s\n", keyStyle.Render(o.Key), o.Label)
	}
	return boxStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}

// RenderProduct shows every attribute of one product.
func RenderProduct(p domain.Product) string {
	rows := [][2]string{
		{"ID", fmt.Sprintf("%d", p.ID())},
		{"Name", p.Name()},
		{"Type", fmt.Sprintf("%s (%s)", p.TypeCode(), p.CategoryName())},
		{"Quantity", fmt.Sprintf("%d", p.Quantity())},
		{"Price", p.PriceText()},
	}

	var b strings.Builder
	for i, r := range rows {
		b.WriteString(labelStyle.Render(padRight(r[0], 10)))
		b.WriteString(titleStyle.Render(r[1]))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String() + "\n"
}

// RenderCategories lists the known product types.
func RenderCategories(cats []domain.Category) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Product types") + "\n")
	b.WriteString(faintStyle.Render(strings.Repeat("─", 30)) + "\n")
	for _, c := range cats {
		fmt.Fprintf(&b, "%s %s\n", keyStyle.Render(padRight(string(c.Code), 4)), c.Name)
	}
	return b.String()
}

func Success(msg string) string {
	return passStyle.Render("✓") + " " + msg + "\n"
}

func Notice(msg string) string {
	return warnTagStyle.Render("!") + " " + msg + "\n"
}

// Error renders err as a one-line message.
func Error(err error) string {
	return errorTagStyle.Render("error") + " " + dimStyle.Render(err.Error()) + "\n"
}

// Indent prefixes every non-empty line of s with n spaces.
func Indent(s string, n int) string {
	if n <= 0 {
		return s
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
