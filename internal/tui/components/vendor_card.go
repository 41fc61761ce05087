package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/nactco/internal/compare"
	"github.com/rgehrsitz/nactco/internal/output"
	"github.com/rgehrsitz/nactco/internal/tui/tuistyles"
)

// VendorCard summarizes one incumbent in a multi-vendor ranking
type VendorCard struct {
	Name       string
	Entry      compare.ComparisonResult
	IsSelected bool
	IsCurrent  bool // the incumbent of the active scenario
}

// RenderRow returns the card as one table row
func (v *VendorCard) RenderRow() string {
	prefix := "  "
	style := tuistyles.UnselectedItemStyle
	if v.IsSelected {
		prefix = "▸ "
		style = tuistyles.SelectedItemStyle
	}

	name := v.Name
	if v.IsCurrent {
		name += " *"
	}

	payback := "none"
	if !v.Entry.NoPayback {
		payback = v.Entry.PaybackYears.StringFixed(1) + " yrs"
	}
	pct := output.Undefined
	if v.Entry.SavingsPercentage.Valid {
		pct = v.Entry.SavingsPercentage.Decimal.StringFixed(1) + "%"
	}

	row := fmt.Sprintf("%s%-4s %-20s %14s %14s %9s %10s",
		prefix,
		fmt.Sprintf("#%d", v.Entry.Rank),
		truncate(name, 20),
		tuistyles.FormatCurrency(v.Entry.IncumbentTCO.InexactFloat64()),
		tuistyles.FormatCurrency(v.Entry.TotalSavings.InexactFloat64()),
		pct,
		payback)
	return style.Render(row)
}

// VendorTable renders a header and one row per card
func VendorTable(cards []*VendorCard) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("No vendors compared yet")
	}

	header := tuistyles.TableHeaderStyle.Render(fmt.Sprintf("  %-4s %-20s %14s %14s %9s %10s",
		"Rank", "Incumbent", "Incumbent TCO", "Savings", "Savings%", "Payback"))

	rows := make([]string, 0, len(cards)+2)
	rows = append(rows, header, lipgloss.NewStyle().Foreground(tuistyles.ColorBorder).Render(strings.Repeat("─", 78)))
	for _, c := range cards {
		rows = append(rows, c.RenderRow())
	}
	return strings.Join(rows, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
