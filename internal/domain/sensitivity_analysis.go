package domain

// SensitivityParameter represents a parameter to sweep in sensitivity analysis
type SensitivityParameter struct {
	Name        string  `yaml:"name" json:"name"`
	MinValue    float64 `yaml:"min_value" json:"min_value"`
	MaxValue    float64 `yaml:"max_value" json:"max_value"`
	Steps       int     `yaml:"steps" json:"steps"`
	BaseValue   float64 `yaml:"base_value" json:"base_value"`
	Unit        string  `yaml:"unit" json:"unit"` // "dollars", "years", "percent", "count", "factor"
	Description string  `yaml:"description" json:"description"`
}

// Sweep parameter names understood by the sensitivity analyzer
const (
	ParamFTECost      = "fte_cost"
	ParamDowntimeCost = "downtime_cost"
	ParamYears        = "years"
	ParamLegacyPct    = "legacy_pct"
	ParamLocations    = "locations"
	ParamMultiplier   = "multiplier"
)

// SensitivityPoint is the outcome of one step in a sweep
type SensitivityPoint struct {
	Value            float64 `json:"value"`
	Multiplier       float64 `json:"multiplier"`
	IncumbentTCO     float64 `json:"incumbent_tco"`
	ReferenceTCO     float64 `json:"reference_tco"`
	TotalSavings     float64 `json:"total_savings"`
	ROI              float64 `json:"roi"`
	PaybackPeriod    float64 `json:"payback_period_years"`
	SavingsChangePct float64 `json:"savings_change_pct"`
}

// ParameterSweep holds every point computed for one parameter
type ParameterSweep struct {
	Parameter SensitivityParameter `json:"parameter"`
	Points    []SensitivityPoint   `json:"points"`
	// Score is the savings swing across the sweep as a percentage of the base incumbent TCO
	Score float64 `json:"score"`
}

// SensitivitySummary provides overall analysis summary
type SensitivitySummary struct {
	MostSensitiveParameter  string             `json:"most_sensitive_parameter"`
	LeastSensitiveParameter string             `json:"least_sensitive_parameter"`
	SensitivityScores       map[string]float64 `json:"sensitivity_scores"`
	Recommendations         []string           `json:"recommendations"`
	RiskLevel               string             `json:"risk_level"` // "LOW", "MEDIUM", "HIGH", "CRITICAL"
}

// ParameterSensitivityAnalysis is the complete output of a sensitivity run
type ParameterSensitivityAnalysis struct {
	ScenarioName string             `json:"scenario_name"`
	Base         SensitivityPoint   `json:"base"`
	Sweeps       []ParameterSweep   `json:"sweeps"`
	Summary      SensitivitySummary `json:"summary"`
}

// DetermineRiskLevel grades the largest sensitivity score
func (ss *SensitivitySummary) DetermineRiskLevel() string {
	var maxScore float64
	for _, score := range ss.SensitivityScores {
		if score > maxScore {
			maxScore = score
		}
	}

	switch {
	case maxScore < 5:
		return "LOW"
	case maxScore < 15:
		return "MEDIUM"
	case maxScore < 30:
		return "HIGH"
	default:
		return "CRITICAL"
	}
}

// GenerateRecommendations turns the risk level into reader guidance
func (ss *SensitivitySummary) GenerateRecommendations() []string {
	var recommendations []string

	switch ss.DetermineRiskLevel() {
	case "LOW":
		recommendations = append(recommendations,
			"Savings are robust across the tested ranges",
			"Catalog defaults are a reasonable basis for a decision")
	case "MEDIUM":
		recommendations = append(recommendations,
			"Validate the most sensitive input against internal figures",
			"Present a low and a high case alongside the base case")
	case "HIGH":
		recommendations = append(recommendations,
			"Savings depend heavily on one or more inputs",
			"Collect measured staffing and downtime data before committing",
			"Re-run the comparison once the environment survey is complete")
	case "CRITICAL":
		recommendations = append(recommendations,
			"Savings can change sign within the tested ranges",
			"Treat the headline figure as indicative only",
			"Run a break-even analysis on the most sensitive input")
	}

	if ss.MostSensitiveParameter != "" {
		recommendations = append(recommendations, "Most sensitive input: "+ss.MostSensitiveParameter)
	}

	return recommendations
}
