package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/rgehrsitz/nactco/internal/domain"
)

// SensitivityFormatter defines a formatter for sensitivity analysis
type SensitivityFormatter interface {
	FormatSensitivityAnalysis(analysis *domain.ParameterSensitivityAnalysis) (string, error)
	Name() string
}

// SensitivityConsoleFormatter formats sensitivity analysis output for console
type SensitivityConsoleFormatter struct{}

func (scf SensitivityConsoleFormatter) Name() string { return "console" }

func (scf SensitivityConsoleFormatter) FormatSensitivityAnalysis(analysis *domain.ParameterSensitivityAnalysis) (string, error) {
	if len(analysis.Sweeps) == 0 {
		return "", fmt.Errorf("no parameters or results in analysis")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "SENSITIVITY ANALYSIS: %s\n", analysis.ScenarioName)
	fmt.Fprintf(&buf, "=================================================================\n")
	fmt.Fprintf(&buf, "Base Case: savings %s, ROI %s, payback %s\n",
		FormatCurrency(analysis.Base.TotalSavings),
		FormatPercentage(analysis.Base.ROI),
		FormatPayback(analysis.Base.PaybackPeriod))
	fmt.Fprintln(&buf)

	for _, sweep := range analysis.Sweeps {
		param := sweep.Parameter
		fmt.Fprintf(&buf, "%s\n", strings.ToUpper(strings.ReplaceAll(param.Name, "_", " ")))
		if param.Description != "" {
			fmt.Fprintf(&buf, "Description: %s\n", param.Description)
		}
		fmt.Fprintf(&buf, "Range: %s to %s (%d steps), base %s\n",
			formatParamValue(param, param.MinValue),
			formatParamValue(param, param.MaxValue),
			param.Steps,
			formatParamValue(param, param.BaseValue))

		fmt.Fprintf(&buf, "%-16s %-14s %-14s %-10s %-12s %-10s\n",
			"Value", "Incumbent TCO", "Savings", "ROI", "Payback", "Change")
		fmt.Fprintln(&buf, strings.Repeat("-", 80))

		for _, p := range sweep.Points {
			value := formatParamValue(param, p.Value)
			if math.Abs(p.Value-param.BaseValue) < 1e-9 {
				value += " ← BASE"
			}
			fmt.Fprintf(&buf, "%-16s %-14s %-14s %-10s %-12s %-10s\n",
				value,
				FormatCurrency(p.IncumbentTCO),
				FormatCurrency(p.TotalSavings),
				FormatPercentage(p.ROI),
				FormatPayback(p.PaybackPeriod),
				signedPercentage(p.SavingsChangePct))
		}
		fmt.Fprintf(&buf, "Sensitivity score: %s of base incumbent TCO\n", FormatPercentage(sweep.Score))
		fmt.Fprintln(&buf)
	}

	// Risk assessment
	riskLevel := analysis.Summary.RiskLevel
	riskEmoji := ""
	switch riskLevel {
	case "LOW":
		riskEmoji = "✅"
	case "MEDIUM":
		riskEmoji = "⚠️"
	case "HIGH":
		riskEmoji = "🔴"
	case "CRITICAL":
		riskEmoji = "🚨"
	}

	fmt.Fprintf(&buf, "MOST SENSITIVE:  %s\n", analysis.Summary.MostSensitiveParameter)
	fmt.Fprintf(&buf, "LEAST SENSITIVE: %s\n", analysis.Summary.LeastSensitiveParameter)
	fmt.Fprintf(&buf, "RISK LEVEL: %s %s\n", riskEmoji, riskLevel)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "RECOMMENDATIONS:")
	for _, rec := range analysis.Summary.Recommendations {
		fmt.Fprintf(&buf, "  • %s\n", rec)
	}

	return buf.String(), nil
}

func formatParamValue(param domain.SensitivityParameter, v float64) string {
	switch param.Unit {
	case "dollars":
		return FormatCurrency(v)
	case "percent":
		return FormatPercentage(v)
	case "factor":
		return FormatMultiplier(v)
	default:
		return fmt.Sprintf("%g", v)
	}
}

func signedPercentage(v float64) string {
	s := FormatPercentage(v)
	if finite(v) && v > 0 {
		return "+" + s
	}
	return s
}

// SensitivityCSVFormatter formats sensitivity analysis output as CSV
type SensitivityCSVFormatter struct{}

func (scf SensitivityCSVFormatter) Name() string { return "csv" }

func (scf SensitivityCSVFormatter) FormatSensitivityAnalysis(analysis *domain.ParameterSensitivityAnalysis) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"parameter_name", "parameter_value", "multiplier", "incumbent_tco", "reference_tco",
		"total_savings", "roi", "payback_years", "savings_change_pct"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, sweep := range analysis.Sweeps {
		for _, p := range sweep.Points {
			row := []string{
				sweep.Parameter.Name,
				csvNum(p.Value),
				csvNum(p.Multiplier),
				csvNum(p.IncumbentTCO),
				csvNum(p.ReferenceTCO),
				csvNum(p.TotalSavings),
				csvNum(p.ROI),
				csvNum(p.PaybackPeriod),
				csvNum(p.SavingsChangePct),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// SensitivityJSONFormatter formats sensitivity analysis output as JSON
type SensitivityJSONFormatter struct{}

func (sjf SensitivityJSONFormatter) Name() string { return "json" }

func (sjf SensitivityJSONFormatter) FormatSensitivityAnalysis(analysis *domain.ParameterSensitivityAnalysis) (string, error) {
	data, err := json.MarshalIndent(NewSensitivityView(analysis), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SensitivityView is the JSON-safe form of a sensitivity analysis
type SensitivityView struct {
	ScenarioName string                 `json:"scenario_name"`
	Base         PointView              `json:"base"`
	Sweeps       []SweepView            `json:"sweeps"`
	Summary      SensitivitySummaryView `json:"summary"`
}

type PointView struct {
	Value            Number `json:"value"`
	Multiplier       Number `json:"multiplier"`
	IncumbentTCO     Number `json:"incumbent_tco"`
	ReferenceTCO     Number `json:"reference_tco"`
	TotalSavings     Number `json:"total_savings"`
	ROI              Number `json:"roi"`
	PaybackPeriod    Number `json:"payback_period_years"`
	SavingsChangePct Number `json:"savings_change_pct"`
}

type SweepView struct {
	Parameter domain.SensitivityParameter `json:"parameter"`
	Points    []PointView                 `json:"points"`
	Score     Number                      `json:"score"`
}

type SensitivitySummaryView struct {
	MostSensitiveParameter  string            `json:"most_sensitive_parameter"`
	LeastSensitiveParameter string            `json:"least_sensitive_parameter"`
	SensitivityScores       map[string]Number `json:"sensitivity_scores"`
	Recommendations         []string          `json:"recommendations"`
	RiskLevel               string            `json:"risk_level"`
}

// NewSensitivityView converts an analysis into its JSON-safe form
func NewSensitivityView(a *domain.ParameterSensitivityAnalysis) SensitivityView {
	view := SensitivityView{
		ScenarioName: a.ScenarioName,
		Base:         pointView(a.Base),
		Sweeps:       make([]SweepView, 0, len(a.Sweeps)),
		Summary: SensitivitySummaryView{
			MostSensitiveParameter:  a.Summary.MostSensitiveParameter,
			LeastSensitiveParameter: a.Summary.LeastSensitiveParameter,
			SensitivityScores:       make(map[string]Number, len(a.Summary.SensitivityScores)),
			Recommendations:         a.Summary.Recommendations,
			RiskLevel:               a.Summary.RiskLevel,
		},
	}
	for _, s := range a.Sweeps {
		sv := SweepView{Parameter: s.Parameter, Score: num(s.Score), Points: make([]PointView, 0, len(s.Points))}
		for _, p := range s.Points {
			sv.Points = append(sv.Points, pointView(p))
		}
		view.Sweeps = append(view.Sweeps, sv)
	}
	for name, score := range a.Summary.SensitivityScores {
		view.Summary.SensitivityScores[name] = num(score)
	}
	return view
}

func pointView(p domain.SensitivityPoint) PointView {
	return PointView{
		Value:            num(p.Value),
		Multiplier:       num(p.Multiplier),
		IncumbentTCO:     num(p.IncumbentTCO),
		ReferenceTCO:     num(p.ReferenceTCO),
		TotalSavings:     num(p.TotalSavings),
		ROI:              num(p.ROI),
		PaybackPeriod:    num(p.PaybackPeriod),
		SavingsChangePct: num(p.SavingsChangePct),
	}
}

// NewSensitivityFormatter creates a sensitivity formatter based on the format name
func NewSensitivityFormatter(format string) SensitivityFormatter {
	switch format {
	case "console", "table", "text":
		return SensitivityConsoleFormatter{}
	case "csv":
		return SensitivityCSVFormatter{}
	case "json":
		return SensitivityJSONFormatter{}
	default:
		return SensitivityConsoleFormatter{} // Default to console
	}
}
