package calculation

import (
	"context"
	"fmt"
	"math"

	"github.com/rgehrsitz/nactco/internal/domain"
)

// SensitivityAnalyzer performs parameter sweep analysis
type SensitivityAnalyzer struct {
	calculationEngine *CalculationEngine
}

// NewSensitivityAnalyzer creates a new sensitivity analyzer. A nil engine gets a default one.
func NewSensitivityAnalyzer(engine *CalculationEngine) *SensitivityAnalyzer {
	if engine == nil {
		engine = NewCalculationEngine()
	}
	return &SensitivityAnalyzer{calculationEngine: engine}
}

// DefaultParameters returns sweep ranges centred on the values in inputs
func DefaultParameters(inputs domain.CalculationInputs) []domain.SensitivityParameter {
	legacyBase := 0.0
	if inputs.Complexity.HasLegacyDevices {
		legacyBase = inputs.Complexity.LegacyDevicePercentage
	}
	locationBase := 1.0
	if inputs.Complexity.HasMultipleLocations {
		locationBase = float64(inputs.Complexity.LocationCount)
	}

	return []domain.SensitivityParameter{
		{
			Name:        domain.ParamFTECost,
			MinValue:    inputs.FTECostPerYear * 0.5,
			MaxValue:    inputs.FTECostPerYear * 1.5,
			Steps:       5,
			BaseValue:   inputs.FTECostPerYear,
			Unit:        "dollars",
			Description: "Fully loaded annual cost of one IT FTE",
		},
		{
			Name:        domain.ParamDowntimeCost,
			MinValue:    inputs.DowntimeCostPerHour * 0.5,
			MaxValue:    inputs.DowntimeCostPerHour * 2,
			Steps:       5,
			BaseValue:   inputs.DowntimeCostPerHour,
			Unit:        "dollars",
			Description: "Business cost of one hour of NAC-related downtime",
		},
		{
			Name:        domain.ParamYears,
			MinValue:    1,
			MaxValue:    math.Max(float64(inputs.YearsToProject)*2, 5),
			Steps:       int(math.Max(float64(inputs.YearsToProject)*2, 5)),
			BaseValue:   float64(inputs.YearsToProject),
			Unit:        "years",
			Description: "Projection horizon",
		},
		{
			Name:        domain.ParamLegacyPct,
			MinValue:    0,
			MaxValue:    100,
			Steps:       5,
			BaseValue:   legacyBase,
			Unit:        "percent",
			Description: "Share of legacy devices on the network",
		},
		{
			Name:        domain.ParamLocations,
			MinValue:    1,
			MaxValue:    21,
			Steps:       6,
			BaseValue:   locationBase,
			Unit:        "count",
			Description: "Number of sites to cover",
		},
		{
			Name:        domain.ParamMultiplier,
			MinValue:    0.9,
			MaxValue:    3.0,
			Steps:       8,
			BaseValue:   ComplexityMultiplier(inputs.Complexity),
			Unit:        "factor",
			Description: "Incumbent complexity multiplier, bypassing the complexity flags",
		},
	}
}

// Analyze sweeps each parameter independently around the base inputs
func (sa *SensitivityAnalyzer) Analyze(
	ctx context.Context,
	scenarioName string,
	inputs domain.CalculationInputs,
	parameters []domain.SensitivityParameter,
) (*domain.ParameterSensitivityAnalysis, error) {
	if len(parameters) == 0 {
		parameters = DefaultParameters(inputs)
	}

	baseResult, err := sa.calculationEngine.Calculate(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	base := toPoint(0, baseResult, baseResult.TCO.TotalSavings)

	analysis := &domain.ParameterSensitivityAnalysis{
		ScenarioName: scenarioName,
		Base:         base,
		Sweeps:       make([]domain.ParameterSweep, 0, len(parameters)),
	}

	for _, param := range parameters {
		sweep, err := sa.sweep(ctx, inputs, param, base)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze parameter %s: %w", param.Name, err)
		}
		analysis.Sweeps = append(analysis.Sweeps, *sweep)
	}

	analysis.Summary = summarize(analysis.Sweeps)
	return analysis, nil
}

// AnalyzeSingleParameter sweeps one parameter
func (sa *SensitivityAnalyzer) AnalyzeSingleParameter(
	ctx context.Context,
	scenarioName string,
	inputs domain.CalculationInputs,
	parameter domain.SensitivityParameter,
) (*domain.ParameterSensitivityAnalysis, error) {
	return sa.Analyze(ctx, scenarioName, inputs, []domain.SensitivityParameter{parameter})
}

func (sa *SensitivityAnalyzer) sweep(
	ctx context.Context,
	inputs domain.CalculationInputs,
	param domain.SensitivityParameter,
	base domain.SensitivityPoint,
) (*domain.ParameterSweep, error) {
	if param.Steps < 1 {
		return nil, fmt.Errorf("steps must be at least 1, got %d", param.Steps)
	}
	if param.MinValue > param.MaxValue {
		return nil, fmt.Errorf("min value %.2f exceeds max value %.2f", param.MinValue, param.MaxValue)
	}

	values := generateParameterValues(param)
	points := make([]domain.SensitivityPoint, 0, len(values))

	minSavings, maxSavings := math.Inf(1), math.Inf(-1)
	for _, value := range values {
		modified, override, err := applyParameter(inputs, param.Name, value)
		if err != nil {
			return nil, err
		}

		var result *domain.ComparisonResult
		if override != nil {
			result, err = sa.calculationEngine.CalculateWithMultiplier(ctx, modified, *override)
		} else {
			result, err = sa.calculationEngine.Calculate(ctx, modified)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to run scenario for %s=%.2f: %w", param.Name, value, err)
		}

		point := toPoint(value, result, base.TotalSavings)
		points = append(points, point)
		minSavings = math.Min(minSavings, point.TotalSavings)
		maxSavings = math.Max(maxSavings, point.TotalSavings)
	}

	score := 0.0
	if base.IncumbentTCO != 0 && len(points) > 0 {
		score = (maxSavings - minSavings) / math.Abs(base.IncumbentTCO) * 100
	}

	return &domain.ParameterSweep{Parameter: param, Points: points, Score: score}, nil
}

// generateParameterValues generates evenly spaced values from min to max inclusive
func generateParameterValues(param domain.SensitivityParameter) []float64 {
	if param.Steps <= 1 {
		return []float64{param.BaseValue}
	}
	step := (param.MaxValue - param.MinValue) / float64(param.Steps-1)
	values := make([]float64, 0, param.Steps)
	for i := 0; i < param.Steps; i++ {
		values = append(values, param.MinValue+step*float64(i))
	}
	return values
}

// applyParameter returns a copy of inputs with one parameter replaced.
// The multiplier parameter is returned as an override instead.
func applyParameter(inputs domain.CalculationInputs, name string, value float64) (domain.CalculationInputs, *float64, error) {
	out := inputs
	switch name {
	case domain.ParamFTECost:
		out.FTECostPerYear = value
	case domain.ParamDowntimeCost:
		out.DowntimeCostPerHour = value
	case domain.ParamYears:
		out.YearsToProject = int(math.Round(value))
	case domain.ParamLegacyPct:
		out.Complexity.HasLegacyDevices = value > 0
		out.Complexity.LegacyDevicePercentage = value
	case domain.ParamLocations:
		n := int(math.Round(value))
		out.Complexity.HasMultipleLocations = n > 1
		out.Complexity.LocationCount = n
	case domain.ParamMultiplier:
		v := value
		return out, &v, nil
	default:
		return out, nil, fmt.Errorf("unknown sensitivity parameter: %s", name)
	}
	return out, nil, nil
}

func toPoint(value float64, r *domain.ComparisonResult, baseSavings float64) domain.SensitivityPoint {
	change := 0.0
	if baseSavings != 0 {
		change = (r.TCO.TotalSavings - baseSavings) / math.Abs(baseSavings) * 100
	}
	return domain.SensitivityPoint{
		Value:            value,
		Multiplier:       r.IncumbentMultiplier,
		IncumbentTCO:     r.TCO.IncumbentTCO,
		ReferenceTCO:     r.TCO.ReferenceTCO,
		TotalSavings:     r.TCO.TotalSavings,
		ROI:              r.TCO.ROI,
		PaybackPeriod:    r.TCO.PaybackPeriod,
		SavingsChangePct: change,
	}
}

func summarize(sweeps []domain.ParameterSweep) domain.SensitivitySummary {
	summary := domain.SensitivitySummary{SensitivityScores: make(map[string]float64, len(sweeps))}

	most, least := -1.0, math.Inf(1)
	for _, s := range sweeps {
		summary.SensitivityScores[s.Parameter.Name] = s.Score
		if s.Score > most {
			most = s.Score
			summary.MostSensitiveParameter = s.Parameter.Name
		}
		if s.Score < least {
			least = s.Score
			summary.LeastSensitiveParameter = s.Parameter.Name
		}
	}

	summary.RiskLevel = summary.DetermineRiskLevel()
	summary.Recommendations = summary.GenerateRecommendations()
	return summary
}
