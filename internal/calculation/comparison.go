package calculation

import (
	"fmt"

	"github.com/rgehrsitz/nactco/internal/domain"
)

// NoPaybackSentinel is reported as the payback period when annual savings are not positive
const NoPaybackSentinel = 999.0

// BuildComparison derives every comparison output from fully resolved inputs.
// It is a pure function: degenerate inputs yield NaN or Inf rather than errors.
func BuildComparison(inputs domain.CalculationInputs) domain.ComparisonResult {
	return BuildComparisonWithMultiplier(inputs, ComplexityMultiplier(inputs.Complexity))
}

// BuildComparisonWithMultiplier runs the comparison with an explicit incumbent multiplier.
// The reference party still receives the dampened form of it.
func BuildComparisonWithMultiplier(inputs domain.CalculationInputs, raw float64) domain.ComparisonResult {
	dampened := DampenedMultiplier(raw)
	years := inputs.YearsToProject

	incumbent := ComputePartyCosts(inputs.IncumbentCostFactors, raw, inputs.FTECostPerYear, inputs.DowntimeCostPerHour, years)
	ref := ComputePartyCosts(inputs.ReferenceCostFactors, dampened, inputs.FTECostPerYear, inputs.DowntimeCostPerHour, years)

	totalSavings := incumbent.Total - ref.Total
	annualSavings := incumbent.Annual - ref.Annual

	tco := domain.TcoResults{
		IncumbentTCO:          incumbent.Total,
		ReferenceTCO:          ref.Total,
		TotalSavings:          totalSavings,
		SavingsPercentage:     totalSavings / incumbent.Total * 100,
		AnnualSavings:         annualSavings,
		InitialCostSavings:    incumbent.Initial - ref.Initial,
		IncumbentInitialCosts: incumbent.Initial,
		IncumbentAnnualCosts:  incumbent.Annual,
		ReferenceInitialCosts: ref.Initial,
		ReferenceAnnualCosts:  ref.Annual,
		ROI:                   totalSavings / ref.Total * 100,
		PaybackPeriod:         PaybackPeriod(ref.Initial, annualSavings),
	}

	incumbentDays := ImplementationDays(inputs.IncumbentTimeline, raw)
	refDays := ImplementationDays(inputs.ReferenceTimeline, dampened)
	daysSaved := incumbentDays - refDays

	return domain.ComparisonResult{
		IncumbentMultiplier: raw,
		ReferenceMultiplier: dampened,
		TCO:                 tco,
		Implementation: domain.ImplementationResults{
			IncumbentDays:       incumbentDays,
			ReferenceDays:       refDays,
			DaysSaved:           daysSaved,
			DaysSavedPercentage: daysSaved / incumbentDays * 100,
		},
		YearByYear:         YearByYear(incumbent, ref, years),
		IncumbentBreakdown: CostBreakdown(inputs.IncumbentCostFactors, raw, inputs.FTECostPerYear, inputs.DowntimeCostPerHour, years),
		ReferenceBreakdown: CostBreakdown(inputs.ReferenceCostFactors, dampened, inputs.FTECostPerYear, inputs.DowntimeCostPerHour, years),
	}
}

// PaybackPeriod is the years needed for annual savings to cover the reference party's initial cost.
// Non-positive annual savings saturate to NoPaybackSentinel.
func PaybackPeriod(referenceInitial, annualSavings float64) float64 {
	if annualSavings > 0 {
		return referenceInitial / annualSavings
	}
	return NoPaybackSentinel
}

// IsNoPayback reports whether a payback value is the saturation sentinel
func IsNoPayback(years float64) bool {
	return years == NoPaybackSentinel
}

// YearByYear builds the linear cumulative cost series; index 0 is the initial outlay
func YearByYear(incumbent, ref PartyCosts, years int) []domain.YearByYearData {
	initialDelta := incumbent.Initial - ref.Initial
	annualDelta := incumbent.Annual - ref.Annual

	series := make([]domain.YearByYearData, 0, max(years+1, 0))
	for year := 0; year <= years; year++ {
		n := float64(year)
		inc := incumbent.Initial + incumbent.Annual*n
		rf := ref.Initial + ref.Annual*n

		label := "Initial"
		if year > 0 {
			label = fmt.Sprintf("Year %d", year)
		}
		series = append(series, domain.YearByYearData{
			Year:              label,
			Incumbent:         inc,
			Reference:         rf,
			Savings:           inc - rf,
			CumulativeSavings: initialDelta + annualDelta*n,
		})
	}
	return series
}

// BreakEvenYear returns the first series index whose cumulative savings are non-negative, or -1
func BreakEvenYear(series []domain.YearByYearData) int {
	for i, point := range series {
		if point.CumulativeSavings >= 0 {
			return i
		}
	}
	return -1
}
