package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/nactco/internal/calculation"
	"github.com/rgehrsitz/nactco/internal/domain"
)

// ConsoleFormatter renders the detailed plain-text report
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	r := report.Result
	tco := r.TCO
	s := report.Scenario

	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf, strings.ToUpper(report.Title()))
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintf(&buf, "Report ID:  %s\n", report.ID)
	fmt.Fprintf(&buf, "Generated:  %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SCENARIO")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	if s.Name != "" {
		fmt.Fprintf(&buf, "  Name:               %s\n", s.Name)
	}
	fmt.Fprintf(&buf, "  Organization Size:  %s", s.Size)
	if s.DeviceCount > 0 {
		fmt.Fprintf(&buf, " (%d devices)", s.DeviceCount)
	}
	fmt.Fprintln(&buf)
	if report.Industry != nil {
		fmt.Fprintf(&buf, "  Industry:           %s\n", report.Industry.Name)
	}
	fmt.Fprintf(&buf, "  Horizon:            %d years\n", s.Years)
	fmt.Fprintf(&buf, "  Complexity:         %s incumbent, %s reference\n",
		FormatMultiplier(r.IncumbentMultiplier), FormatMultiplier(r.ReferenceMultiplier))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "TOTAL COST OF OWNERSHIP")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  %-22s %16s %16s\n", "", vendorName(report.Incumbent), vendorName(report.Reference))
	fmt.Fprintf(&buf, "  %-22s %16s %16s\n", "Initial Costs", FormatCurrency(tco.IncumbentInitialCosts), FormatCurrency(tco.ReferenceInitialCosts))
	fmt.Fprintf(&buf, "  %-22s %16s %16s\n", "Annual Costs", FormatCurrency(tco.IncumbentAnnualCosts), FormatCurrency(tco.ReferenceAnnualCosts))
	fmt.Fprintf(&buf, "  %-22s %16s %16s\n", fmt.Sprintf("%d-Year TCO", s.Years), FormatCurrency(tco.IncumbentTCO), FormatCurrency(tco.ReferenceTCO))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SAVINGS")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Total Savings:        %s (%s)\n", FormatCurrency(tco.TotalSavings), FormatPercentage(tco.SavingsPercentage))
	fmt.Fprintf(&buf, "  Annual Savings:       %s\n", FormatCurrency(tco.AnnualSavings))
	fmt.Fprintf(&buf, "  Initial Cost Savings: %s\n", FormatCurrency(tco.InitialCostSavings))
	fmt.Fprintf(&buf, "  ROI:                  %s\n", FormatPercentage(tco.ROI))
	fmt.Fprintf(&buf, "  Payback Period:       %s\n", FormatPayback(tco.PaybackPeriod))
	fmt.Fprintln(&buf)

	impl := r.Implementation
	fmt.Fprintln(&buf, "IMPLEMENTATION")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  %s: %s\n", vendorName(report.Incumbent), FormatTimePeriod(impl.IncumbentDays))
	fmt.Fprintf(&buf, "  %s: %s\n", vendorName(report.Reference), FormatTimePeriod(impl.ReferenceDays))
	fmt.Fprintf(&buf, "  Time Saved: %s (%s)\n", FormatTimePeriod(impl.DaysSaved), FormatPercentage(impl.DaysSavedPercentage))
	fmt.Fprintln(&buf)

	writeYearByYear(&buf, r.YearByYear)
	writeBreakdown(&buf, r.IncumbentBreakdown, r.ReferenceBreakdown, vendorName(report.Incumbent), vendorName(report.Reference))

	if report.Industry != nil && len(report.Industry.ComplianceNeeds) > 0 {
		fmt.Fprintln(&buf, "INDUSTRY CONSIDERATIONS")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		fmt.Fprintf(&buf, "  Compliance: %s\n", strings.Join(report.Industry.ComplianceNeeds, ", "))
		if len(report.Industry.KeyRequirements) > 0 {
			fmt.Fprintf(&buf, "  Key Requirements: %s\n", strings.Join(report.Industry.KeyRequirements, ", "))
		}
		fmt.Fprintln(&buf)
	}

	return buf.Bytes(), nil
}

func writeYearByYear(buf *bytes.Buffer, series []domain.YearByYearData) {
	if len(series) == 0 {
		return
	}
	fmt.Fprintln(buf, "CUMULATIVE COSTS")
	fmt.Fprintln(buf, strings.Repeat("-", 80))
	fmt.Fprintf(buf, "  %-10s %16s %16s %16s %16s\n", "Year", "Incumbent", "Reference", "Savings", "Cumulative")
	for _, y := range series {
		fmt.Fprintf(buf, "  %-10s %16s %16s %16s %16s\n",
			y.Year,
			FormatCurrency(y.Incumbent),
			FormatCurrency(y.Reference),
			FormatCurrency(y.Savings),
			FormatCurrency(y.CumulativeSavings))
	}
	if year := calculation.BreakEvenYear(series); year >= 0 {
		fmt.Fprintf(buf, "  Break-even: %s\n", series[year].Year)
	} else {
		fmt.Fprintln(buf, "  Break-even: not reached within horizon")
	}
	fmt.Fprintln(buf)
}

func writeBreakdown(buf *bytes.Buffer, incumbent, ref []domain.CostBreakdownItem, incName, refName string) {
	if len(incumbent) == 0 {
		return
	}
	refByName := make(map[string]float64, len(ref))
	for _, item := range ref {
		refByName[item.Name] = item.Value
	}

	fmt.Fprintln(buf, "COST BREAKDOWN")
	fmt.Fprintln(buf, strings.Repeat("-", 80))
	fmt.Fprintf(buf, "  %-18s %16s %16s\n", "Category", incName, refName)
	for _, item := range incumbent {
		fmt.Fprintf(buf, "  %-18s %16s %16s\n", item.Name, FormatCurrency(item.Value), FormatCurrency(refByName[item.Name]))
	}
	fmt.Fprintf(buf, "  %-18s %16s %16s\n", "Total",
		FormatCurrency(domain.BreakdownTotal(incumbent)), FormatCurrency(domain.BreakdownTotal(ref)))
	fmt.Fprintln(buf)
}
