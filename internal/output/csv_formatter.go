package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/nactco/internal/calculation"
)

// CSVFormatter renders the report as one long table of section/item rows
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	r := report.Result
	tco := r.TCO
	impl := r.Implementation

	header := []string{"Section", "Item", "Incumbent", "Reference", "Difference"}
	rows := [][]string{
		{"Summary", "Initial Costs", csvNum(tco.IncumbentInitialCosts), csvNum(tco.ReferenceInitialCosts), csvNum(tco.InitialCostSavings)},
		{"Summary", "Annual Costs", csvNum(tco.IncumbentAnnualCosts), csvNum(tco.ReferenceAnnualCosts), csvNum(tco.AnnualSavings)},
		{"Summary", "Total Cost of Ownership", csvNum(tco.IncumbentTCO), csvNum(tco.ReferenceTCO), csvNum(tco.TotalSavings)},
		{"Summary", "Savings Percentage", "", "", csvNum(tco.SavingsPercentage)},
		{"Summary", "ROI", "", "", csvNum(tco.ROI)},
		{"Summary", "Payback Years", "", "", csvPayback(tco.PaybackPeriod)},
		{"Summary", "Complexity Multiplier", csvNum(r.IncumbentMultiplier), csvNum(r.ReferenceMultiplier), ""},
		{"Implementation", "Days", csvNum(impl.IncumbentDays), csvNum(impl.ReferenceDays), csvNum(impl.DaysSaved)},
	}
	for _, y := range r.YearByYear {
		rows = append(rows, []string{"YearByYear", y.Year, csvNum(y.Incumbent), csvNum(y.Reference), csvNum(y.CumulativeSavings)})
	}
	refByName := make(map[string]float64, len(r.ReferenceBreakdown))
	for _, item := range r.ReferenceBreakdown {
		refByName[item.Name] = item.Value
	}
	for _, item := range r.IncumbentBreakdown {
		ref := refByName[item.Name]
		rows = append(rows, []string{"Breakdown", item.Name, csvNum(item.Value), csvNum(ref), csvNum(item.Value - ref)})
	}

	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func csvNum(v float64) string {
	if !finite(v) {
		return Undefined
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// csvPayback keeps the payback column numeric except for the no-payback sentinel
func csvPayback(years float64) string {
	if finite(years) && calculation.IsNoPayback(years) {
		return "no payback"
	}
	return csvNum(years)
}
