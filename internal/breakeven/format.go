package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats solver results as a console table
type TableFormatter struct{}

// Format generates a formatted table for a single solver result
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	sb.WriteString(fmt.Sprintf("Target:              %s\n", result.Target))
	sb.WriteString(fmt.Sprintf("Search Range:        %g to %g\n", result.SearchMin, result.SearchMax))
	sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:          %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:         %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("BREAK-EVEN POINT\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Current Value:       %s\n", result.BaseValue.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Break-even Value:    %s\n", result.BreakEvenValue.StringFixed(2)))
	if result.ChangeFromBase.Valid {
		sb.WriteString(fmt.Sprintf("Change Required:     %s%s%%\n",
			tf.deltaSymbol(result.ChangeFromBase.Decimal), result.ChangeFromBase.Decimal.StringFixed(1)))
	}
	sb.WriteString(fmt.Sprintf("Residual Savings:    $%s\n", tf.formatCurrency(result.ResidualSavings)))
	sb.WriteString("\n")

	sb.WriteString("CURRENT SCENARIO\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Total Savings:       $%s\n", tf.formatCurrency(result.BaseSavings)))
	if result.PaybackYear >= 0 {
		sb.WriteString(fmt.Sprintf("Payback Year:        %d\n", result.PaybackYear))
	} else {
		sb.WriteString("Payback Year:        none within horizon\n")
	}
	sb.WriteString("\n")

	return sb.String()
}

// FormatMulti formats the results of solving every target
func (tf *TableFormatter) FormatMulti(result *MultiResult) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN ANALYSIS: ALL TARGETS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	sb.WriteString(fmt.Sprintf("%-22s %15s %15s %12s %12s\n",
		"Target", "Current", "Break-even", "Change", "Iterations"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, res := range result.Results {
		change := "n/a"
		if res.ChangeFromBase.Valid {
			change = tf.deltaSymbol(res.ChangeFromBase.Decimal) + res.ChangeFromBase.Decimal.StringFixed(1) + "%"
		}
		sb.WriteString(fmt.Sprintf("%-22s %15s %15s %12s %12d\n",
			tf.truncate(string(res.Target), 22),
			tf.formatShort(res.BaseValue),
			tf.formatShort(res.BreakEvenValue),
			change,
			res.Iterations))
	}
	for _, target := range result.Unreachable {
		sb.WriteString(fmt.Sprintf("%-22s %15s %15s %12s %12s\n",
			tf.truncate(string(target), 22), "-", "none", "-", "-"))
	}
	sb.WriteString("\n")

	if len(result.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *Result) (string, error) {
	return jf.marshal(result)
}

// FormatMulti formats multi-target results as JSON
func (jf *JSONFormatter) FormatMulti(result *MultiResult) (string, error) {
	return jf.marshal(result)
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Helper methods

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func (tf *TableFormatter) formatCurrency(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func (tf *TableFormatter) formatShort(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(2)
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
