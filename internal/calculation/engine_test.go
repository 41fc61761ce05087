package calculation

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/nactco/internal/domain"
)

func ciscoSmall() domain.CostFactors {
	return domain.CostFactors{
		InitialHardwareCost:          75000,
		AnnualMaintenanceCost:        25000,
		AnnualLicensingCost:          40000,
		ImplementationServicesCost:   35000,
		TrainingCost:                 10000,
		NetworkRedesignCost:          15000,
		FTECount:                     1,
		EstimatedAnnualDowntimeHours: 24,
	}
}

func portnoxSmall() domain.CostFactors {
	return domain.CostFactors{
		AnnualMaintenanceCost:        5000,
		AnnualLicensingCost:          25000,
		ImplementationServicesCost:   5000,
		TrainingCost:                 2000,
		NetworkRedesignCost:          2000,
		FTECount:                     0.25,
		EstimatedAnnualDowntimeHours: 4,
	}
}

func baselineInputs() domain.CalculationInputs {
	return domain.CalculationInputs{
		IncumbentCostFactors: ciscoSmall(),
		ReferenceCostFactors: portnoxSmall(),
		IncumbentTimeline: domain.ImplementationTimeline{
			PlanningDays: 14, DeploymentDays: 10, IntegrationDays: 15,
			TestingDays: 21, StaffTrainingDays: 10, RolloutDays: 30,
		},
		ReferenceTimeline: domain.ImplementationTimeline{
			PlanningDays: 3, DeploymentDays: 1, IntegrationDays: 2,
			TestingDays: 2, StaffTrainingDays: 1, RolloutDays: 1,
		},
		Complexity:          domain.DefaultComplexityFactors(),
		YearsToProject:      3,
		FTECostPerYear:      100000,
		DowntimeCostPerHour: 5000,
	}
}

func TestNewCalculationEngine(t *testing.T) {
	engine := NewCalculationEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
}

func TestCalculationEngine_SetLogger(t *testing.T) {
	engine := NewCalculationEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	// nil falls back to the no-op logger
	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestCalculationEngine_Calculate_Baseline(t *testing.T) {
	engine := NewCalculationEngine()

	result, err := engine.Calculate(context.Background(), baselineInputs())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 1.0, result.IncumbentMultiplier)
	assert.Equal(t, 1.0, result.ReferenceMultiplier)

	tco := result.TCO
	assert.InDelta(t, 135000, tco.IncumbentInitialCosts, 1e-6)
	assert.InDelta(t, 285000, tco.IncumbentAnnualCosts, 1e-6)
	assert.InDelta(t, 990000, tco.IncumbentTCO, 1e-6)
	assert.InDelta(t, 9000, tco.ReferenceInitialCosts, 1e-6)
	assert.InDelta(t, 75000, tco.ReferenceAnnualCosts, 1e-6)
	assert.InDelta(t, 234000, tco.ReferenceTCO, 1e-6)
	assert.InDelta(t, 756000, tco.TotalSavings, 1e-6)
	assert.InDelta(t, 210000, tco.AnnualSavings, 1e-6)
	assert.InDelta(t, 126000, tco.InitialCostSavings, 1e-6)
	assert.InDelta(t, 76.3636, tco.SavingsPercentage, 1e-4)
	assert.InDelta(t, 323.0769, tco.ROI, 1e-4)
	assert.InDelta(t, 9000.0/210000.0, tco.PaybackPeriod, 1e-9)

	impl := result.Implementation
	assert.InDelta(t, 100, impl.IncumbentDays, 1e-9)
	assert.InDelta(t, 10, impl.ReferenceDays, 1e-9)
	assert.InDelta(t, 90, impl.DaysSaved, 1e-9)
	assert.InDelta(t, 90, impl.DaysSavedPercentage, 1e-9)
}

func TestCalculationEngine_Calculate_CancelledContext(t *testing.T) {
	engine := NewCalculationEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := engine.Calculate(ctx, baselineInputs())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)

	result, err = engine.CalculateWithMultiplier(ctx, baselineInputs(), 1.5)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestCalculationEngine_LogsDegenerateResults(t *testing.T) {
	engine := NewCalculationEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)

	inputs := baselineInputs()
	inputs.IncumbentCostFactors = domain.CostFactors{}
	inputs.ReferenceCostFactors = domain.CostFactors{}

	result, err := engine.Calculate(context.Background(), inputs)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(result.TCO.SavingsPercentage), "0/0 savings percentage passes through as NaN")
	assert.True(t, math.IsNaN(result.TCO.ROI))
	assert.Equal(t, NoPaybackSentinel, result.TCO.PaybackPeriod)

	assert.True(t, logger.has("WARN: savings percentage is undefined"))
	assert.True(t, logger.has("WARN: ROI is undefined"))
	assert.True(t, logger.has("INFO: no payback within horizon"))
}

func TestCalculationEngine_CalculateWithMultiplier(t *testing.T) {
	engine := NewCalculationEngine()
	inputs := baselineInputs()

	base, err := engine.CalculateWithMultiplier(context.Background(), inputs, 1)
	require.NoError(t, err)
	doubled, err := engine.CalculateWithMultiplier(context.Background(), inputs, 2)
	require.NoError(t, err)

	assert.InDelta(t, base.TCO.IncumbentTCO*2, doubled.TCO.IncumbentTCO, 1e-6, "incumbent costs scale linearly with the multiplier")
	assert.InDelta(t, 1.4, doubled.ReferenceMultiplier, 1e-9)
	assert.InDelta(t, base.TCO.ReferenceTCO*1.4, doubled.TCO.ReferenceTCO, 1e-6)
}

// TestLogger is a simple logger for testing
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...any) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...any) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...any) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...any) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}

func (tl *TestLogger) has(prefix string) bool {
	for _, m := range tl.messages {
		if strings.HasPrefix(m, prefix) {
			return true
		}
	}
	return false
}
