package output

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rgehrsitz/nactco/internal/calculation"
	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/domain"
	"github.com/rgehrsitz/nactco/internal/reference"
)

// buildTestReport runs the small Cisco vs Portnox baseline through the engine
func buildTestReport(t *testing.T) *Report {
	t.Helper()

	cat, err := reference.Default()
	require.NoError(t, err)

	resolved, err := config.Resolve(cat, config.Scenario{
		Name:                "baseline",
		Incumbent:           "cisco",
		Reference:           "portnox",
		Size:                domain.SizeSmall,
		Industry:            "technology",
		Years:               3,
		FTECost:             config.Float(100000),
		DowntimeCostPerHour: config.Float(5000),
	})
	require.NoError(t, err)

	result, err := calculation.NewCalculationEngine().Calculate(context.Background(), resolved.Inputs)
	require.NoError(t, err)

	report, err := NewReport(cat, resolved, result)
	require.NoError(t, err)
	return report
}

func TestNewReport(t *testing.T) {
	report := buildTestReport(t)

	assert.NotEmpty(t, report.ID, "Should assign a report ID")
	assert.False(t, report.GeneratedAt.IsZero(), "Should stamp generation time")
	assert.Equal(t, "Cisco", report.Incumbent.Name)
	assert.Equal(t, "Portnox", report.Reference.Name)
	require.NotNil(t, report.Industry)
	assert.Equal(t, "Technology", report.Industry.Name)
	assert.Equal(t, DefaultAssumptions, report.Assumptions)
	assert.Equal(t, "NAC TCO Analysis: Cisco vs Portnox", report.Title())

	assert.InDelta(t, 990000, report.Result.TCO.IncumbentTCO, 0.01)
	assert.InDelta(t, 234000, report.Result.TCO.ReferenceTCO, 0.01)
}

func TestNewReport_Errors(t *testing.T) {
	cat, err := reference.Default()
	require.NoError(t, err)

	_, err = NewReport(nil, &config.ResolvedScenario{}, &domain.ComparisonResult{})
	assert.EqualError(t, err, "catalog is required")

	_, err = NewReport(cat, nil, &domain.ComparisonResult{})
	assert.EqualError(t, err, "scenario and result are required")

	resolved := &config.ResolvedScenario{Scenario: config.Scenario{Incumbent: "ghost", Reference: "portnox"}}
	_, err = NewReport(cat, resolved, &domain.ComparisonResult{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load vendor ghost")
}

func TestFormatHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"currency", FormatCurrency(1234567), "$1,234,567"},
		{"currency small", FormatCurrency(999), "$999"},
		{"currency negative", FormatCurrency(-120000), "-$120,000"},
		{"currency rounds", FormatCurrency(1499.6), "$1,500"},
		{"currency nan", FormatCurrency(math.NaN()), Undefined},
		{"percentage", FormatPercentage(76.3636), "76.4%"},
		{"percentage inf", FormatPercentage(math.Inf(1)), Undefined},
		{"days", FormatTimePeriod(12), "12 days"},
		{"one month", FormatTimePeriod(30), "1 month"},
		{"months", FormatTimePeriod(90), "3 months"},
		{"one year", FormatTimePeriod(365), "1.0 year"},
		{"years", FormatTimePeriod(547.5), "1.5 years"},
		{"payback", FormatPayback(0.04), "0.0 years"},
		{"payback years", FormatPayback(2.25), "2.3 years"},
		{"no payback", FormatPayback(calculation.NoPaybackSentinel), "No payback within horizon"},
		{"multiplier", FormatMultiplier(1.35), "1.35x"},
		{"multiplier nan", FormatMultiplier(math.NaN()), Undefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestFormatterFunc(t *testing.T) {
	var received *Report
	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(report *Report) ([]byte, error) {
			received = report
			return []byte("test output"), nil
		},
	}

	report := &Report{ID: "abc"}
	out, err := formatter.Format(report)

	assert.NoError(t, err)
	assert.Same(t, report, received, "Should pass the report through")
	assert.Equal(t, []byte("test output"), out)
	assert.Equal(t, "test-formatter", formatter.Name())
}

func TestWriteFormatted(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer os.Chdir(originalDir)

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(*Report) ([]byte, error) {
			return []byte("test output content"), nil
		},
	}

	filename, err := WriteFormatted(formatter, &Report{}, "txt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "nac_tco_report_"), "Should have correct prefix")
	assert.True(t, strings.HasSuffix(filename, ".txt"), "Should have correct extension")

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "test output content", string(content))
}

func TestWriteFormatted_FormatterError(t *testing.T) {
	formatter := FormatterFunc{
		ID: "error-formatter",
		F: func(*Report) ([]byte, error) {
			return nil, fmt.Errorf("formatter error")
		},
	}

	filename, err := WriteFormatted(formatter, &Report{}, "txt")
	assert.Error(t, err)
	assert.Empty(t, filename, "Should return empty filename on error")
	assert.Contains(t, err.Error(), "formatter error")
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range AvailableFormatterNames() {
		f := GetFormatterByName(name)
		require.NotNil(t, f, name)
		assert.Equal(t, name, f.Name())
	}

	aliases := map[string]string{
		"text":  "console",
		"table": "console",
		"md":    "markdown",
		"excel": "xlsx",
	}
	for alias, want := range aliases {
		f := GetFormatterByName(alias)
		require.NotNil(t, f, alias)
		assert.Equal(t, want, f.Name())
	}

	assert.Nil(t, GetFormatterByName("pdf"))
	assert.Equal(t, []string{"console", "csv", "html", "json", "markdown", "xlsx"}, AvailableFormatterNames())
	assert.Equal(t, []string{"excel", "md", "table", "text"}, AvailableFormatAliases())
}

func TestConsoleFormatter_Format(t *testing.T) {
	report := buildTestReport(t)

	out, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)
	content := string(out)

	for _, want := range []string{
		"NAC TCO ANALYSIS: CISCO VS PORTNOX",
		"Report ID:  " + report.ID,
		"KEY ASSUMPTIONS:",
		"TOTAL COST OF OWNERSHIP",
		"$990,000",
		"$234,000",
		"Total Savings:        $756,000 (76.4%)",
		"CUMULATIVE COSTS",
		"Break-even: Initial",
		"COST BREAKDOWN",
		"INDUSTRY CONSIDERATIONS",
		"SOC 2",
	} {
		assert.Contains(t, content, want)
	}
}

func TestConsoleFormatter_NoBreakEven(t *testing.T) {
	report := buildTestReport(t)
	result := *report.Result
	result.YearByYear = []domain.YearByYearData{
		{Year: "Initial", CumulativeSavings: -500},
		{Year: "Year 1", CumulativeSavings: -100},
	}
	report.Result = &result

	out, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Break-even: not reached within horizon")
}

func TestCSVFormatter_Format(t *testing.T) {
	report := buildTestReport(t)

	out, err := CSVFormatter{}.Format(report)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Section", "Item", "Incumbent", "Reference", "Difference"}, records[0])
	assert.Equal(t, []string{"Summary", "Total Cost of Ownership", "990000.00", "234000.00", "756000.00"}, records[3])

	sections := map[string]int{}
	for _, rec := range records[1:] {
		sections[rec[0]]++
	}
	assert.Equal(t, 7, sections["Summary"])
	assert.Equal(t, 1, sections["Implementation"])
	assert.Equal(t, 4, sections["YearByYear"], "Initial plus three years")
	assert.Equal(t, len(domain.BreakdownCategories), sections["Breakdown"])
}

func TestCSVFormatter_NonFinite(t *testing.T) {
	report := buildTestReport(t)
	result := *report.Result
	result.TCO.SavingsPercentage = math.NaN()
	report.Result = &result

	out, err := CSVFormatter{}.Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Summary,Savings Percentage,,,undefined")
}

func TestCSVFormatter_NoPayback(t *testing.T) {
	report := buildTestReport(t)
	result := *report.Result
	result.TCO.PaybackPeriod = calculation.NoPaybackSentinel
	report.Result = &result

	out, err := CSVFormatter{}.Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Summary,Payback Years,,,no payback")
	assert.NotContains(t, string(out), "999.00")

	out, err = CSVFormatter{}.Format(buildTestReport(t))
	require.NoError(t, err)
	assert.Contains(t, string(out), "Summary,Payback Years,,,0.04")
}

func TestJSONFormatter_Format(t *testing.T) {
	report := buildTestReport(t)

	out, err := JSONFormatter{Pretty: true}.Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(out), "\n  \"id\"", "Pretty output should be indented")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, report.ID, decoded["id"])

	result := decoded["result"].(map[string]any)
	tco := result["tco"].(map[string]any)
	assert.InDelta(t, 756000, tco["total_savings"].(float64), 0.01)
	assert.Equal(t, false, tco["no_payback"])
	assert.Equal(t, float64(0), result["break_even_year"])
}

func TestJSONFormatter_NonFiniteBecomesNull(t *testing.T) {
	report := buildTestReport(t)
	result := *report.Result
	result.TCO.SavingsPercentage = math.NaN()
	result.TCO.ROI = math.Inf(1)
	result.TCO.PaybackPeriod = calculation.NoPaybackSentinel
	report.Result = &result

	out, err := JSONFormatter{}.Format(report)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "\n", "Compact output should be on one line")
	assert.Contains(t, string(out), `"savings_percentage":null`)
	assert.Contains(t, string(out), `"roi":null`)
	assert.Contains(t, string(out), `"no_payback":true`)
}

func TestNewResultView_Nil(t *testing.T) {
	view := NewResultView(nil)
	assert.Equal(t, -1, view.BreakEvenYear)
}

func TestMarkdownFormatter_Format(t *testing.T) {
	report := buildTestReport(t)

	out, err := MarkdownFormatter{}.Format(report)
	require.NoError(t, err)
	content := string(out)

	for _, want := range []string{
		"# NAC TCO Analysis: Cisco vs Portnox",
		"## Summary",
		"Replacing **Cisco** with **Portnox** saves **$756,000** (76.4%) over 3 years.",
		"| 3-year TCO | $990,000 | $234,000 |",
		"## Cumulative Costs",
		"Cumulative savings turn positive at **Initial**.",
		"## Cost Breakdown",
		"## Technology Considerations",
		"## Assumptions",
	} {
		assert.Contains(t, content, want)
	}
}

func TestHTMLFormatter_Format(t *testing.T) {
	report := buildTestReport(t)

	out, err := HTMLFormatter{}.Format(report)
	require.NoError(t, err)
	content := string(out)

	assert.Contains(t, content, "<!DOCTYPE html>")
	assert.Contains(t, content, "<title>NAC TCO Analysis: Cisco vs Portnox</title>")
	assert.Contains(t, content, "<h2>Summary</h2>")
	assert.Contains(t, content, "<table>", "Markdown tables should render as HTML tables")
	assert.NotContains(t, content, "| Metric | Value |")
}

func TestColorOr(t *testing.T) {
	assert.Equal(t, "#fff", colorOr("", "#fff"))
	assert.Equal(t, "#000", colorOr("#000", "#fff"))
}

func TestXLSXFormatter_Format(t *testing.T) {
	report := buildTestReport(t)

	out, err := XLSXFormatter{}.Format(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "YearByYear", "Breakdown"}, f.GetSheetList())

	label, err := f.GetCellValue("Summary", "A7")
	require.NoError(t, err)
	assert.Equal(t, "Incumbent TCO", label)

	year, err := f.GetCellValue("YearByYear", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Initial", year)

	rows, err := f.GetRows("Breakdown")
	require.NoError(t, err)
	assert.Len(t, rows, len(domain.BreakdownCategories)+1)
}

func sampleSensitivityAnalysis() *domain.ParameterSensitivityAnalysis {
	param := domain.SensitivityParameter{
		Name:        "fte_cost",
		MinValue:    50000,
		MaxValue:    150000,
		Steps:       3,
		BaseValue:   100000,
		Unit:        "dollars",
		Description: "Fully loaded cost of one IT FTE per year",
	}
	base := domain.SensitivityPoint{
		Value: 100000, Multiplier: 1, IncumbentTCO: 990000, ReferenceTCO: 234000,
		TotalSavings: 756000, ROI: 323.08, PaybackPeriod: 0.04,
	}
	return &domain.ParameterSensitivityAnalysis{
		ScenarioName: "baseline",
		Base:         base,
		Sweeps: []domain.ParameterSweep{
			{
				Parameter: param,
				Points: []domain.SensitivityPoint{
					{Value: 50000, Multiplier: 1, IncumbentTCO: 765000, ReferenceTCO: 196500, TotalSavings: 568500, ROI: 289.3, PaybackPeriod: 0.05, SavingsChangePct: -24.8},
					base,
					{Value: 150000, Multiplier: 1, IncumbentTCO: 1215000, ReferenceTCO: 271500, TotalSavings: 943500, ROI: 347.5, PaybackPeriod: math.NaN(), SavingsChangePct: 24.8},
				},
				Score: 37.88,
			},
		},
		Summary: domain.SensitivitySummary{
			MostSensitiveParameter:  "fte_cost",
			LeastSensitiveParameter: "fte_cost",
			SensitivityScores:       map[string]float64{"fte_cost": 37.88},
			Recommendations:         []string{"Validate staffing costs before committing"},
			RiskLevel:               "HIGH",
		},
	}
}

func TestNewSensitivityFormatter(t *testing.T) {
	assert.Equal(t, "console", NewSensitivityFormatter("table").Name())
	assert.Equal(t, "csv", NewSensitivityFormatter("csv").Name())
	assert.Equal(t, "json", NewSensitivityFormatter("json").Name())
	assert.Equal(t, "console", NewSensitivityFormatter("unknown").Name())
}

func TestSensitivityConsoleFormatter(t *testing.T) {
	out, err := SensitivityConsoleFormatter{}.FormatSensitivityAnalysis(sampleSensitivityAnalysis())
	require.NoError(t, err)

	for _, want := range []string{
		"SENSITIVITY ANALYSIS: baseline",
		"FTE COST",
		"$100,000 ← BASE",
		"+24.8%",
		"-24.8%",
		"Sensitivity score: 37.9% of base incumbent TCO",
		"RISK LEVEL: 🔴 HIGH",
		"  • Validate staffing costs before committing",
	} {
		assert.Contains(t, out, want)
	}

	_, err = SensitivityConsoleFormatter{}.FormatSensitivityAnalysis(&domain.ParameterSensitivityAnalysis{})
	assert.Error(t, err, "Should reject an analysis with no sweeps")
}

func TestSensitivityCSVFormatter(t *testing.T) {
	out, err := SensitivityCSVFormatter{}.FormatSensitivityAnalysis(sampleSensitivityAnalysis())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "parameter_name", records[0][0])
	assert.Equal(t, []string{"fte_cost", "50000.00", "1.00", "765000.00", "196500.00", "568500.00", "289.30", "0.05", "-24.80"}, records[1])
	assert.Equal(t, Undefined, records[3][7])
}

func TestSensitivityJSONFormatter(t *testing.T) {
	out, err := SensitivityJSONFormatter{}.FormatSensitivityAnalysis(sampleSensitivityAnalysis())
	require.NoError(t, err)

	var decoded SensitivityView
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "baseline", decoded.ScenarioName)
	require.Len(t, decoded.Sweeps, 1)
	require.Len(t, decoded.Sweeps[0].Points, 3)
	assert.Nil(t, decoded.Sweeps[0].Points[2].PaybackPeriod, "NaN payback should encode as null")
	require.NotNil(t, decoded.Summary.SensitivityScores["fte_cost"])
	assert.InDelta(t, 37.88, *decoded.Summary.SensitivityScores["fte_cost"], 1e-9)
	assert.Equal(t, "HIGH", decoded.Summary.RiskLevel)
}
