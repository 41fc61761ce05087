package compare

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

var csvHeader = []string{
	"Scenario",
	"Type",
	"Incumbent",
	"Reference",
	"Size",
	"Years",
	"Rank",
	"Incumbent Multiplier",
	"Incumbent TCO",
	"Reference TCO",
	"Total Savings",
	"Savings %",
	"ROI %",
	"Payback (Years)",
	"Days Saved",
	"Savings Diff from Base",
	"Incumbent TCO Diff from Base",
}

// Format generates CSV output for a template comparison
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	rows := make([][]string, 0, len(compSet.AlternativeResults)+1)
	if compSet.BaseResult != nil {
		rows = append(rows, cf.formatRow(compSet.BaseResult, "base"))
	}
	for _, alt := range compSet.AlternativeResults {
		rows = append(rows, cf.formatRow(&alt, "alternative"))
	}
	return cf.write(rows)
}

// FormatVendors generates CSV output for a vendor comparison in rank order
func (cf *CSVFormatter) FormatVendors(vc *VendorComparison) (string, error) {
	ranked := vc.Ranked()
	rows := make([][]string, 0, len(ranked))
	for _, e := range ranked {
		rows = append(rows, cf.formatRow(&e, "vendor"))
	}
	return cf.write(rows)
}

func (cf *CSVFormatter) write(rows [][]string) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	if err := writer.Write(csvHeader); err != nil {
		return "", err
	}
	if err := writer.WriteAll(rows); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	payback := result.PaybackYears.StringFixed(2)
	if result.NoPayback {
		payback = "none"
	}
	return []string{
		result.ScenarioName,
		scenarioType,
		result.Incumbent,
		result.Reference,
		string(result.Size),
		strconv.Itoa(result.Years),
		strconv.Itoa(result.Rank),
		result.IncumbentMultiplier.StringFixed(4),
		result.IncumbentTCO.StringFixed(2),
		result.ReferenceTCO.StringFixed(2),
		result.TotalSavings.StringFixed(2),
		nullString(result.SavingsPercentage),
		nullString(result.ROI),
		payback,
		result.DaysSaved.StringFixed(1),
		result.SavingsDiffFromBase.StringFixed(2),
		result.IncumbentTCODiffFromBase.StringFixed(2),
	}
}

func nullString(d decimal.NullDecimal) string {
	if !d.Valid {
		return "undefined"
	}
	return d.Decimal.StringFixed(2)
}
