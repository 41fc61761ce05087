package compare

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/nactco/internal/calculation"
	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/domain"
)

// ComparisonResult represents a single scenario run with its headline metrics
type ComparisonResult struct {
	ScenarioName string            `json:"scenario_name"`
	Description  string            `json:"description,omitempty"`
	Incumbent    string            `json:"incumbent"`
	Reference    string            `json:"reference"`
	Size         domain.SizeBandID `json:"size"`
	Years        int               `json:"years"`
	Rank         int               `json:"rank,omitempty"`

	Result *domain.ComparisonResult `json:"-"`

	// Key Metrics
	IncumbentMultiplier decimal.Decimal     `json:"incumbent_multiplier"`
	IncumbentTCO        decimal.Decimal     `json:"incumbent_tco"`
	ReferenceTCO        decimal.Decimal     `json:"reference_tco"`
	TotalSavings        decimal.Decimal     `json:"total_savings"`
	AnnualSavings       decimal.Decimal     `json:"annual_savings"`
	SavingsPercentage   decimal.NullDecimal `json:"savings_percentage"`
	ROI                 decimal.NullDecimal `json:"roi"`
	PaybackYears        decimal.Decimal     `json:"payback_years"`
	NoPayback           bool                `json:"no_payback"`
	DaysSaved           decimal.Decimal     `json:"days_saved"`

	// Comparison to Base
	SavingsDiffFromBase      decimal.Decimal `json:"savings_diff_from_base"`
	IncumbentTCODiffFromBase decimal.Decimal `json:"incumbent_tco_diff_from_base"`
	PaybackDiffFromBase      decimal.Decimal `json:"payback_diff_from_base"`
}

// ComparisonSet represents a base scenario and its template variants
type ComparisonSet struct {
	BaseScenarioName   string             `json:"base_scenario_name"`
	BaseResult         *ComparisonResult  `json:"base_result"`
	AlternativeResults []ComparisonResult `json:"alternative_results"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"config_path,omitempty"`
}

// VendorComparison holds one result per incumbent vendor, in request order
type VendorComparison struct {
	ScenarioName    string             `json:"scenario_name"`
	Reference       string             `json:"reference"`
	Industry        string             `json:"industry"`
	Entries         []ComparisonResult `json:"entries"`
	Recommendations []string           `json:"recommendations"`
}

// Ranked returns the entries ordered by rank
func (vc *VendorComparison) Ranked() []ComparisonResult {
	ranked := append([]ComparisonResult(nil), vc.Entries...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Rank < ranked[j].Rank })
	return ranked
}

// MetricsCalculator extracts display metrics from engine results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics converts an engine result into a ComparisonResult
func (mc *MetricsCalculator) CalculateMetrics(name string, s config.Scenario, r *domain.ComparisonResult) ComparisonResult {
	tco := r.TCO
	return ComparisonResult{
		ScenarioName:        name,
		Incumbent:           s.Incumbent,
		Reference:           s.Reference,
		Size:                s.Size,
		Years:               s.Years,
		Result:              r,
		IncumbentMultiplier: money(r.IncumbentMultiplier, 4),
		IncumbentTCO:        money(tco.IncumbentTCO, 2),
		ReferenceTCO:        money(tco.ReferenceTCO, 2),
		TotalSavings:        money(tco.TotalSavings, 2),
		AnnualSavings:       money(tco.AnnualSavings, 2),
		SavingsPercentage:   nullable(tco.SavingsPercentage),
		ROI:                 nullable(tco.ROI),
		PaybackYears:        money(tco.PaybackPeriod, 2),
		NoPayback:           calculation.IsNoPayback(tco.PaybackPeriod),
		DaysSaved:           money(r.Implementation.DaysSaved, 1),
	}
}

// CalculateComparison fills the deltas of scenario against base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.SavingsDiffFromBase = scenario.TotalSavings.Sub(base.TotalSavings)
	scenario.IncumbentTCODiffFromBase = scenario.IncumbentTCO.Sub(base.IncumbentTCO)
	if !scenario.NoPayback && !base.NoPayback {
		scenario.PaybackDiffFromBase = scenario.PaybackYears.Sub(base.PaybackYears)
	}
	return scenario
}

// money converts a finite float to a rounded decimal; non-finite values become zero
func money(v float64, places int32) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(places)
}

func nullable(v float64) decimal.NullDecimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(v).Round(2))
}

// GenerateRecommendations creates recommendations for a template comparison
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	// Largest savings
	best := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TotalSavings.GreaterThan(best.TotalSavings) {
			best = alt
		}
	}
	if best != base {
		recommendations = append(recommendations,
			"Largest Savings: "+best.ScenarioName+" adds $"+best.SavingsDiffFromBase.StringFixed(0)+
				" of savings over the base scenario")
	}

	// Biggest incumbent cost increase
	costliest := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.IncumbentTCO.GreaterThan(costliest.IncumbentTCO) {
			costliest = alt
		}
	}
	if costliest != base {
		recommendations = append(recommendations,
			"Highest Incumbent Cost: "+costliest.ScenarioName+" raises incumbent TCO by $"+
				costliest.IncumbentTCODiffFromBase.StringFixed(0))
	}

	// Payback changes
	for _, alt := range compSet.AlternativeResults {
		if alt.NoPayback && !base.NoPayback {
			recommendations = append(recommendations,
				fmt.Sprintf("No Payback: %s does not pay back within %d years", alt.ScenarioName, alt.Years))
		}
	}

	return recommendations
}

// GenerateVendorRecommendations summarizes a ranked multi-vendor comparison
func GenerateVendorRecommendations(vc *VendorComparison, recommended []string) []string {
	recommendations := []string{}
	if len(vc.Entries) == 0 {
		return recommendations
	}

	ranked := vc.Ranked()
	top := ranked[0]
	if top.TotalSavings.IsPositive() {
		pct := "n/a"
		if top.SavingsPercentage.Valid {
			pct = top.SavingsPercentage.Decimal.StringFixed(1) + "%"
		}
		recommendations = append(recommendations,
			fmt.Sprintf("Largest Savings: replacing %s with %s saves $%s (%s) over %d years",
				top.Incumbent, vc.Reference, top.TotalSavings.StringFixed(0), pct, top.Years))
	}

	var fastest *ComparisonResult
	var stalled []string
	for i := range ranked {
		e := &ranked[i]
		if e.NoPayback {
			stalled = append(stalled, e.Incumbent)
			continue
		}
		if fastest == nil || e.PaybackYears.LessThan(fastest.PaybackYears) {
			fastest = e
		}
	}
	if fastest != nil {
		recommendations = append(recommendations,
			fmt.Sprintf("Fastest Payback: moving off %s pays back in %s years", fastest.Incumbent, fastest.PaybackYears.StringFixed(2)))
	}
	if len(stalled) > 0 {
		sort.Strings(stalled)
		recommendations = append(recommendations,
			fmt.Sprintf("No Payback: %v show no payback within the horizon", stalled))
	}

	if len(recommended) > 0 && vc.Industry != "" {
		recommendations = append(recommendations,
			fmt.Sprintf("Industry Fit: vendors commonly chosen in %s are %v", vc.Industry, recommended))
	}

	return recommendations
}

// rank assigns 1-based ranks by total savings, largest first; ties keep input order
func rank(entries []ComparisonResult) {
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return entries[order[a]].TotalSavings.GreaterThan(entries[order[b]].TotalSavings)
	})
	for pos, idx := range order {
		entries[idx].Rank = pos + 1
	}
}
