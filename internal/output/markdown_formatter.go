package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/nactco/internal/calculation"
)

// MarkdownFormatter renders the report as GitHub-flavored markdown
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	r := report.Result
	tco := r.TCO
	s := report.Scenario
	inc, ref := vendorName(report.Incumbent), vendorName(report.Reference)

	fmt.Fprintf(&buf, "# %s\n\n", report.Title())
	fmt.Fprintf(&buf, "_Report %s, generated %s_\n\n", report.ID, report.GeneratedAt.Format("2006-01-02 15:04 MST"))

	fmt.Fprintln(&buf, "## Summary")
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Replacing **%s** with **%s** saves **%s** (%s) over %d years.\n\n",
		inc, ref, FormatCurrency(tco.TotalSavings), FormatPercentage(tco.SavingsPercentage), s.Years)

	fmt.Fprintln(&buf, "| Metric | Value |")
	fmt.Fprintln(&buf, "|---|---|")
	fmt.Fprintf(&buf, "| Organization size | %s |\n", s.Size)
	if report.Industry != nil {
		fmt.Fprintf(&buf, "| Industry | %s |\n", report.Industry.Name)
	}
	fmt.Fprintf(&buf, "| Annual savings | %s |\n", FormatCurrency(tco.AnnualSavings))
	fmt.Fprintf(&buf, "| ROI | %s |\n", FormatPercentage(tco.ROI))
	fmt.Fprintf(&buf, "| Payback | %s |\n", FormatPayback(tco.PaybackPeriod))
	fmt.Fprintf(&buf, "| Implementation time saved | %s |\n", FormatTimePeriod(r.Implementation.DaysSaved))
	fmt.Fprintf(&buf, "| Complexity multiplier | %s |\n", FormatMultiplier(r.IncumbentMultiplier))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "## Total Cost of Ownership")
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "| | %s | %s |\n", inc, ref)
	fmt.Fprintln(&buf, "|---|---:|---:|")
	fmt.Fprintf(&buf, "| Initial costs | %s | %s |\n", FormatCurrency(tco.IncumbentInitialCosts), FormatCurrency(tco.ReferenceInitialCosts))
	fmt.Fprintf(&buf, "| Annual costs | %s | %s |\n", FormatCurrency(tco.IncumbentAnnualCosts), FormatCurrency(tco.ReferenceAnnualCosts))
	fmt.Fprintf(&buf, "| %d-year TCO | %s | %s |\n", s.Years, FormatCurrency(tco.IncumbentTCO), FormatCurrency(tco.ReferenceTCO))
	fmt.Fprintln(&buf)

	if len(r.YearByYear) > 0 {
		fmt.Fprintln(&buf, "## Cumulative Costs")
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "| Year | Incumbent | Reference | Cumulative savings |")
		fmt.Fprintln(&buf, "|---|---:|---:|---:|")
		for _, y := range r.YearByYear {
			fmt.Fprintf(&buf, "| %s | %s | %s | %s |\n",
				y.Year, FormatCurrency(y.Incumbent), FormatCurrency(y.Reference), FormatCurrency(y.CumulativeSavings))
		}
		fmt.Fprintln(&buf)
		if year := calculation.BreakEvenYear(r.YearByYear); year >= 0 {
			fmt.Fprintf(&buf, "Cumulative savings turn positive at **%s**.\n\n", r.YearByYear[year].Year)
		}
	}

	if len(r.IncumbentBreakdown) > 0 {
		refByName := make(map[string]float64, len(r.ReferenceBreakdown))
		for _, item := range r.ReferenceBreakdown {
			refByName[item.Name] = item.Value
		}
		fmt.Fprintln(&buf, "## Cost Breakdown")
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "| Category | %s | %s |\n", inc, ref)
		fmt.Fprintln(&buf, "|---|---:|---:|")
		for _, item := range r.IncumbentBreakdown {
			fmt.Fprintf(&buf, "| %s | %s | %s |\n", item.Name, FormatCurrency(item.Value), FormatCurrency(refByName[item.Name]))
		}
		fmt.Fprintln(&buf)
	}

	if report.Industry != nil {
		fmt.Fprintf(&buf, "## %s Considerations\n\n", report.Industry.Name)
		if len(report.Industry.ComplianceNeeds) > 0 {
			fmt.Fprintf(&buf, "- Compliance: %s\n", strings.Join(report.Industry.ComplianceNeeds, ", "))
		}
		for _, req := range report.Industry.KeyRequirements {
			fmt.Fprintf(&buf, "- %s\n", req)
		}
		fmt.Fprintln(&buf)
	}

	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	fmt.Fprintln(&buf, "## Assumptions")
	fmt.Fprintln(&buf)
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "- %s\n", a)
	}

	return buf.Bytes(), nil
}
