package scenes

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/nactco/internal/calculation"
	"github.com/rgehrsitz/nactco/internal/domain"
	"github.com/rgehrsitz/nactco/internal/output"
	"github.com/rgehrsitz/nactco/internal/tui/components"
	"github.com/rgehrsitz/nactco/internal/tui/tuistyles"
)

// ResultsModel shows the headline metrics, cost projection and breakdown of a report
type ResultsModel struct {
	report *output.Report
	width  int
	height int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetReport updates the report to display
func (m *ResultsModel) SetReport(r *output.Report) {
	m.report = r
}

// Report returns the report on display, or nil
func (m *ResultsModel) Report() *output.Report {
	return m.report
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the results scene
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	return m, nil
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.report == nil || m.report.Result == nil {
		return tuistyles.BorderStyle.Render(
			tuistyles.TitleStyle.Render("Results") + "\n\n" +
				tuistyles.InfoStyle.Render("No results yet. Pick a vendor on the home screen or adjust parameters."))
	}

	r := m.report
	incName, refName := r.Incumbent.Name, r.Reference.Name

	header := tuistyles.TitleStyle.Render(r.Title()) + "\n" +
		tuistyles.SubtitleStyle.Render(fmt.Sprintf("%s organization • %d-year horizon • complexity %s / %s",
			r.Scenario.Size, r.Scenario.Years,
			output.FormatMultiplier(r.Result.IncumbentMultiplier),
			output.FormatMultiplier(r.Result.ReferenceMultiplier)))

	chartWidth := 60
	if m.width > 20 {
		chartWidth = min(90, m.width-10)
	}
	chart := components.NewCostChart(r.Result.YearByYear).
		WithNames(incName, refName).
		WithSize(chartWidth, 12).
		Render()

	return tuistyles.BorderStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		components.MetricGrid(metricCards(r), 3),
		"",
		chart,
		"",
		renderBreakdown(r.Result, incName, refName),
	))
}

func metricCards(r *output.Report) []*components.MetricCard {
	tco := r.Result.TCO
	impl := r.Result.Implementation
	saves := tco.TotalSavings >= 0

	savings := components.NewMetricCard("Total Savings", output.FormatCurrency(tco.TotalSavings)).
		WithTrend(saves, output.FormatPercentage(tco.SavingsPercentage)+" of incumbent TCO")
	incumbent := components.NewMetricCard(r.Incumbent.Name+" TCO", output.FormatCurrency(tco.IncumbentTCO)).
		WithDetail(output.FormatCurrency(tco.IncumbentAnnualCosts) + "/yr")
	reference := components.NewMetricCard(r.Reference.Name+" TCO", output.FormatCurrency(tco.ReferenceTCO)).
		WithDetail(output.FormatCurrency(tco.ReferenceAnnualCosts) + "/yr")

	roi := components.NewMetricCard("ROI", output.FormatPercentage(tco.ROI))
	if !math.IsNaN(tco.ROI) && !math.IsInf(tco.ROI, 0) {
		roi.WithTrend(tco.ROI >= 0, "on "+output.FormatCurrency(tco.ReferenceInitialCosts)+" initial")
	}

	payback := components.NewMetricCard("Payback", output.FormatPayback(tco.PaybackPeriod))
	if idx := calculation.BreakEvenYear(r.Result.YearByYear); idx >= 0 {
		payback.WithDetail("break-even: " + r.Result.YearByYear[idx].Year)
	} else {
		payback.WithDetail("no break-even in horizon")
	}

	deploy := components.NewMetricCard("Deployment", output.FormatTimePeriod(impl.ReferenceDays)).
		WithTrend(impl.DaysSaved >= 0, output.FormatTimePeriod(math.Abs(impl.DaysSaved))+" vs incumbent")

	return []*components.MetricCard{savings, incumbent, reference, roi, payback, deploy}
}

func renderBreakdown(r *domain.ComparisonResult, incName, refName string) string {
	var b strings.Builder
	b.WriteString(tuistyles.TableHeaderStyle.Render(
		fmt.Sprintf("%-20s %16s %16s", "Cost category", truncateName(incName, 16), truncateName(refName, 16))))
	b.WriteString("\n")

	refValues := make(map[string]float64, len(r.ReferenceBreakdown))
	for _, item := range r.ReferenceBreakdown {
		refValues[item.Name] = item.Value
	}
	for _, item := range r.IncumbentBreakdown {
		b.WriteString(tuistyles.TableCellStyle.Render(fmt.Sprintf("%-20s %16s %16s",
			item.Name, output.FormatCurrency(item.Value), output.FormatCurrency(refValues[item.Name]))))
		b.WriteString("\n")
	}
	b.WriteString(tuistyles.TableHighlightStyle.Render(fmt.Sprintf("%-20s %16s %16s", "Total",
		output.FormatCurrency(domain.BreakdownTotal(r.IncumbentBreakdown)),
		output.FormatCurrency(domain.BreakdownTotal(r.ReferenceBreakdown)))))
	return b.String()
}

func truncateName(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
