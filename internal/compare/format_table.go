package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing a base scenario with its variants
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("NAC SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 84) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 28
	numWidth := 13

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Incumbent TCO",
		numWidth, "Reference TCO",
		numWidth, "Savings",
		numWidth, "Payback"))
	sb.WriteString(strings.Repeat("-", 84) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, "(base)"))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 84) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, ""))
		}
	}

	sb.WriteString(strings.Repeat("=", 84) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 84) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}

			sb.WriteString(fmt.Sprintf("  Savings:          %s$%s\n",
				tf.deltaSymbol(alt.SavingsDiffFromBase),
				tf.formatDecimal(alt.SavingsDiffFromBase.Abs())))

			if !alt.IncumbentTCODiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Incumbent TCO:    %s$%s\n",
					tf.deltaSymbol(alt.IncumbentTCODiffFromBase),
					tf.formatDecimal(alt.IncumbentTCODiffFromBase.Abs())))
			}

			if !alt.PaybackDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Payback:          %s%s years\n",
					tf.deltaSymbol(alt.PaybackDiffFromBase),
					alt.PaybackDiffFromBase.Abs().StringFixed(2)))
			}
		}
		sb.WriteString("\n")
	}

	tf.writeRecommendations(&sb, compSet.Recommendations)
	return sb.String()
}

// FormatVendors generates a ranked table of incumbent vendors
func (tf *TableFormatter) FormatVendors(vc *VendorComparison) string {
	var sb strings.Builder

	sb.WriteString("NAC VENDOR COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 84) + "\n")
	sb.WriteString(fmt.Sprintf("Reference: %s", vc.Reference))
	if vc.Industry != "" {
		sb.WriteString(fmt.Sprintf("    Industry: %s", vc.Industry))
	}
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("%-5s %-14s %13s %13s %13s %9s %10s\n",
		"Rank", "Incumbent", "Incumbent TCO", "Reference TCO", "Savings", "Savings%", "Payback"))
	sb.WriteString(strings.Repeat("-", 84) + "\n")

	for _, e := range vc.Ranked() {
		pct := "undefined"
		if e.SavingsPercentage.Valid {
			pct = e.SavingsPercentage.Decimal.StringFixed(1) + "%"
		}
		sb.WriteString(fmt.Sprintf("%-5d %-14s %13s %13s %13s %9s %10s\n",
			e.Rank,
			tf.truncate(e.Incumbent, 14),
			"$"+tf.formatDecimal(e.IncumbentTCO),
			"$"+tf.formatDecimal(e.ReferenceTCO),
			"$"+tf.formatDecimal(e.TotalSavings),
			pct,
			tf.payback(&e)))
	}
	sb.WriteString(strings.Repeat("=", 84) + "\n\n")

	tf.writeRecommendations(&sb, vc.Recommendations)
	return sb.String()
}

func (tf *TableFormatter) writeRecommendations(sb *strings.Builder, recs []string) {
	if len(recs) == 0 {
		return
	}
	sb.WriteString("RECOMMENDATIONS\n")
	sb.WriteString(strings.Repeat("-", 84) + "\n")
	for _, rec := range recs {
		sb.WriteString(fmt.Sprintf("• %s\n", rec))
	}
	sb.WriteString("\n")
}

func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, suffix string) string {
	name := result.ScenarioName
	if suffix != "" {
		name += " " + suffix
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, "$"+tf.formatDecimal(result.IncumbentTCO),
		numWidth, "$"+tf.formatDecimal(result.ReferenceTCO),
		numWidth, "$"+tf.formatDecimal(result.TotalSavings),
		numWidth, tf.payback(result))
}

func (tf *TableFormatter) payback(result *ComparisonResult) string {
	if result.NoPayback {
		return "none"
	}
	return result.PaybackYears.StringFixed(2) + " yrs"
}

// formatDecimal formats a decimal for display (in thousands)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + or - symbol for deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if alt.SavingsDiffFromBase.IsPositive() {
			change = fmt.Sprintf("+$%s", tf.formatDecimal(alt.SavingsDiffFromBase))
		} else if alt.SavingsDiffFromBase.IsNegative() {
			change = fmt.Sprintf("-$%s", tf.formatDecimal(alt.SavingsDiffFromBase.Abs()))
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}
