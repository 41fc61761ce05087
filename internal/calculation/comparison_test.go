package calculation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/nactco/internal/domain"
)

func TestComputePartyCosts(t *testing.T) {
	costs := ComputePartyCosts(ciscoSmall(), 1.5, 100000, 5000, 2)

	assert.InDelta(t, 135000*1.5, costs.Initial, 1e-6)
	assert.InDelta(t, 285000*1.5, costs.Annual, 1e-6)
	assert.InDelta(t, costs.Initial+costs.Annual*2, costs.Total, 1e-6)
	assert.Equal(t, 1.5, costs.Multiplier)
}

func TestBuildComparison_ZeroYears(t *testing.T) {
	inputs := baselineInputs()
	inputs.YearsToProject = 0

	result := BuildComparison(inputs)

	assert.InDelta(t, 135000, result.TCO.IncumbentTCO, 1e-6, "total is initial cost only")
	assert.InDelta(t, 9000, result.TCO.ReferenceTCO, 1e-6)
	require.Len(t, result.YearByYear, 1)
	assert.Equal(t, "Initial", result.YearByYear[0].Year)
}

func TestBuildComparison_NoPayback(t *testing.T) {
	inputs := baselineInputs()
	// swap parties so the reference is the expensive one
	inputs.IncumbentCostFactors, inputs.ReferenceCostFactors = portnoxSmall(), ciscoSmall()

	result := BuildComparison(inputs)

	assert.Less(t, result.TCO.TotalSavings, 0.0)
	assert.Less(t, result.TCO.ROI, 0.0)
	assert.Equal(t, NoPaybackSentinel, result.TCO.PaybackPeriod)
	assert.True(t, IsNoPayback(result.TCO.PaybackPeriod))
	assert.Equal(t, -1, BreakEvenYear(result.YearByYear))
}

func TestPaybackPeriod(t *testing.T) {
	assert.InDelta(t, 0.5, PaybackPeriod(100, 200), 1e-12)
	assert.Equal(t, NoPaybackSentinel, PaybackPeriod(100, 0))
	assert.Equal(t, NoPaybackSentinel, PaybackPeriod(100, -5))
	assert.Equal(t, 0.0, PaybackPeriod(0, 10))
}

func TestYearByYear(t *testing.T) {
	incumbent := PartyCosts{Initial: 135000, Annual: 285000}
	ref := PartyCosts{Initial: 9000, Annual: 75000}

	series := YearByYear(incumbent, ref, 3)
	require.Len(t, series, 4)

	assert.Equal(t, "Initial", series[0].Year)
	assert.Equal(t, "Year 1", series[1].Year)
	assert.Equal(t, "Year 3", series[3].Year)

	assert.InDelta(t, 135000, series[0].Incumbent, 1e-6)
	assert.InDelta(t, 9000, series[0].Reference, 1e-6)
	assert.InDelta(t, 126000, series[0].CumulativeSavings, 1e-6)

	last := series[3]
	assert.InDelta(t, 990000, last.Incumbent, 1e-6)
	assert.InDelta(t, 234000, last.Reference, 1e-6)
	assert.InDelta(t, 756000, last.CumulativeSavings, 1e-6)
	assert.InDelta(t, last.Incumbent-last.Reference, last.Savings, 1e-6)

	for i := 1; i < len(series); i++ {
		assert.Greater(t, series[i].Incumbent, series[i-1].Incumbent, "series is non-decreasing for non-negative costs")
	}
}

func TestYearByYear_NegativeYears(t *testing.T) {
	series := YearByYear(PartyCosts{}, PartyCosts{}, -2)
	assert.Empty(t, series)
}

func TestBreakEvenYear(t *testing.T) {
	incumbent := PartyCosts{Initial: 10000, Annual: 50000}
	ref := PartyCosts{Initial: 60000, Annual: 20000}

	// cumulative savings: -50000, -20000, 10000
	series := YearByYear(incumbent, ref, 4)
	assert.Equal(t, 2, BreakEvenYear(series))
	assert.Equal(t, -1, BreakEvenYear(nil))
}

func TestCostBreakdown_SumsToTotal(t *testing.T) {
	result := BuildComparison(baselineInputs())

	require.Len(t, result.IncumbentBreakdown, len(domain.BreakdownCategories))
	require.Len(t, result.ReferenceBreakdown, len(domain.BreakdownCategories))

	for i, item := range result.IncumbentBreakdown {
		assert.Equal(t, domain.BreakdownCategories[i], item.Name)
	}

	assert.InDelta(t, result.TCO.IncumbentTCO, domain.BreakdownTotal(result.IncumbentBreakdown), 1e-6)
	assert.InDelta(t, result.TCO.ReferenceTCO, domain.BreakdownTotal(result.ReferenceBreakdown), 1e-6)

	staff := result.IncumbentBreakdown[6]
	assert.Equal(t, domain.CategoryITStaff, staff.Name)
	assert.InDelta(t, 300000, staff.Value, 1e-6)
}

func TestBuildComparison_ComplexityRaisesSavings(t *testing.T) {
	simple := BuildComparison(baselineInputs())

	inputs := baselineInputs()
	inputs.Complexity.NetworkComplexity = domain.LevelHigh
	inputs.Complexity.HasComplexAuthentication = true
	loaded := BuildComparison(inputs)

	assert.Greater(t, loaded.IncumbentMultiplier, simple.IncumbentMultiplier)
	assert.Greater(t, loaded.TCO.TotalSavings, simple.TCO.TotalSavings)
	assert.Greater(t, loaded.Implementation.DaysSaved, simple.Implementation.DaysSaved)
}

func TestBuildComparison_Deterministic(t *testing.T) {
	engine := NewCalculationEngine()
	a, err := engine.Calculate(context.Background(), baselineInputs())
	require.NoError(t, err)
	b, err := engine.Calculate(context.Background(), baselineInputs())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
