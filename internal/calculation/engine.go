package calculation

import (
	"context"
	"math"

	"github.com/rgehrsitz/nactco/internal/domain"
)

// CalculationEngine runs TCO comparisons and reports degenerate outcomes to its logger.
// It holds no state besides the logger and is safe for concurrent use.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates an engine with a no-op logger
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculate builds the comparison for inputs. The only error is context cancellation;
// business conditions (no payback, undefined percentages) come back in the result.
func (ce *CalculationEngine) Calculate(ctx context.Context, inputs domain.CalculationInputs) (*domain.ComparisonResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := BuildComparison(inputs)
	ce.logResult(&result, inputs.YearsToProject)
	return &result, nil
}

// CalculateWithMultiplier is Calculate with the complexity model bypassed
func (ce *CalculationEngine) CalculateWithMultiplier(ctx context.Context, inputs domain.CalculationInputs, raw float64) (*domain.ComparisonResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := BuildComparisonWithMultiplier(inputs, raw)
	ce.logResult(&result, inputs.YearsToProject)
	return &result, nil
}

func (ce *CalculationEngine) logResult(r *domain.ComparisonResult, years int) {
	log := ce.Logger
	if log == nil {
		log = NopLogger{}
	}

	log.Debugf("complexity multipliers: incumbent=%.4f reference=%.4f", r.IncumbentMultiplier, r.ReferenceMultiplier)
	log.Debugf("TCO over %d years: incumbent=%.2f reference=%.2f savings=%.2f",
		years, r.TCO.IncumbentTCO, r.TCO.ReferenceTCO, r.TCO.TotalSavings)

	if !isFinite(r.TCO.SavingsPercentage) {
		log.Warnf("savings percentage is undefined (incumbent TCO %.2f)", r.TCO.IncumbentTCO)
	}
	if !isFinite(r.TCO.ROI) {
		log.Warnf("ROI is undefined (reference TCO %.2f)", r.TCO.ReferenceTCO)
	}
	if IsNoPayback(r.TCO.PaybackPeriod) {
		log.Infof("no payback within horizon: annual savings %.2f", r.TCO.AnnualSavings)
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
