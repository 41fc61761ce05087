package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary    = "Summary"
	sheetYearByYear = "YearByYear"
	sheetBreakdown  = "Breakdown"
)

// XLSXFormatter renders the report as an Excel workbook with Summary, YearByYear and Breakdown sheets
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string { return "xlsx" }

func (x XLSXFormatter) Format(report *Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the summary
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	for _, name := range []string{sheetYearByYear, sheetBreakdown} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet: %w", err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 3}) // #,##0
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	r := report.Result
	tco := r.TCO
	s := report.Scenario

	summary := [][]any{
		{"Report ID", report.ID},
		{"Generated", report.GeneratedAt.Format("2006-01-02 15:04")},
		{"Incumbent", vendorName(report.Incumbent)},
		{"Reference", vendorName(report.Reference)},
		{"Size", string(s.Size)},
		{"Years", s.Years},
		{"Incumbent TCO", cellNum(tco.IncumbentTCO)},
		{"Reference TCO", cellNum(tco.ReferenceTCO)},
		{"Total Savings", cellNum(tco.TotalSavings)},
		{"Annual Savings", cellNum(tco.AnnualSavings)},
		{"Savings %", cellNum(tco.SavingsPercentage)},
		{"ROI %", cellNum(tco.ROI)},
		{"Payback", FormatPayback(tco.PaybackPeriod)},
		{"Incumbent Multiplier", cellNum(r.IncumbentMultiplier)},
		{"Implementation Days Saved", cellNum(r.Implementation.DaysSaved)},
	}
	if report.Industry != nil {
		summary = append(summary, []any{"Industry", report.Industry.Name})
	}
	if err := writeRows(f, sheetSummary, summary); err != nil {
		return nil, err
	}
	f.SetCellStyle(sheetSummary, "A1", fmt.Sprintf("A%d", len(summary)), bold)
	f.SetCellStyle(sheetSummary, "B7", "B10", money)
	f.SetColWidth(sheetSummary, "A", "A", 28)
	f.SetColWidth(sheetSummary, "B", "B", 40)

	years := [][]any{{"Year", "Incumbent", "Reference", "Savings", "Cumulative Savings"}}
	for _, y := range r.YearByYear {
		years = append(years, []any{y.Year, cellNum(y.Incumbent), cellNum(y.Reference), cellNum(y.Savings), cellNum(y.CumulativeSavings)})
	}
	if err := writeRows(f, sheetYearByYear, years); err != nil {
		return nil, err
	}
	f.SetCellStyle(sheetYearByYear, "A1", "E1", bold)
	if len(years) > 1 {
		f.SetCellStyle(sheetYearByYear, "B2", fmt.Sprintf("E%d", len(years)), money)
	}

	refByName := make(map[string]float64, len(r.ReferenceBreakdown))
	for _, item := range r.ReferenceBreakdown {
		refByName[item.Name] = item.Value
	}
	breakdown := [][]any{{"Category", vendorName(report.Incumbent), vendorName(report.Reference)}}
	for _, item := range r.IncumbentBreakdown {
		breakdown = append(breakdown, []any{item.Name, cellNum(item.Value), cellNum(refByName[item.Name])})
	}
	if err := writeRows(f, sheetBreakdown, breakdown); err != nil {
		return nil, err
	}
	f.SetCellStyle(sheetBreakdown, "A1", "C1", bold)
	if len(breakdown) > 1 {
		f.SetCellStyle(sheetBreakdown, "B2", fmt.Sprintf("C%d", len(breakdown)), money)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for row, values := range rows {
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

// cellNum keeps finite numbers numeric and writes the undefined marker otherwise
func cellNum(v float64) any {
	if !finite(v) {
		return Undefined
	}
	return v
}
