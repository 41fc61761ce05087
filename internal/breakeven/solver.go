package breakeven

import (
	"context"
	"fmt"
	"math"

	"github.com/rgehrsitz/nactco/internal/calculation"
	"github.com/rgehrsitz/nactco/internal/domain"
	"github.com/shopspring/decimal"
)

// Solver finds the input value at which total savings reach zero
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	if calcEngine == nil {
		calcEngine = calculation.NewCalculationEngine()
	}
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Solve bisects the request's target over its range until savings are within tolerance of zero
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Apply defaults
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}
	tolerance := req.Tolerance.InexactFloat64()

	base, err := s.CalcEngine.Calculate(ctx, req.Inputs)
	if err != nil {
		return nil, &BreakEvenError{Operation: "solve", Message: "failed to calculate base scenario", Cause: err}
	}

	lo, hi := req.Range()
	result := &Result{
		Request:     req,
		Target:      req.Target,
		SearchMin:   lo,
		SearchMax:   hi,
		BaseValue:   money(req.Target.BaseValue(req.Inputs)),
		BaseSavings: money(base.TCO.TotalSavings),
		PaybackYear: calculation.BreakEvenYear(base.YearByYear),
	}

	fLo, err := s.savingsAt(ctx, req, lo)
	if err != nil {
		return nil, err
	}
	fHi, err := s.savingsAt(ctx, req, hi)
	if err != nil {
		return nil, err
	}

	switch {
	case math.Abs(fLo) < tolerance:
		return s.converged(result, lo, fLo, 0, "Lower bound is a break-even point"), nil
	case math.Abs(fHi) < tolerance:
		return s.converged(result, hi, fHi, 0, "Upper bound is a break-even point"), nil
	case math.Signbit(fLo) == math.Signbit(fHi):
		return nil, &BreakEvenError{
			Operation: "solve",
			Message:   fmt.Sprintf("%s: savings keep one sign over [%g, %g]", req.Target, lo, hi),
			Cause:     ErrNoBreakEven,
		}
	}

	bestValue, bestSavings := lo, fLo
	if math.Abs(fHi) < math.Abs(fLo) {
		bestValue, bestSavings = hi, fHi
	}

	for iterations := 1; iterations <= req.MaxIterations; iterations++ {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if req.Target.Integer() && hi-lo <= 1 {
			return s.converged(result, bestValue, bestSavings, iterations-1,
				fmt.Sprintf("Bracketed between %g and %g", lo, hi)), nil
		}

		mid := (lo + hi) / 2
		if req.Target.Integer() {
			mid = math.Floor(mid)
		}

		fMid, err := s.savingsAt(ctx, req, mid)
		if err != nil {
			return nil, err
		}
		if math.Abs(fMid) < math.Abs(bestSavings) {
			bestValue, bestSavings = mid, fMid
		}

		if math.Abs(fMid) < tolerance {
			return s.converged(result, mid, fMid, iterations,
				fmt.Sprintf("Converged to zero savings within $%s", req.Tolerance.StringFixed(0))), nil
		}

		if math.Signbit(fMid) == math.Signbit(fLo) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}

	result.Iterations = req.MaxIterations
	result.BreakEvenValue = money(bestValue)
	result.ResidualSavings = money(bestSavings)
	result.ChangeFromBase = changeFromBase(req.Target.BaseValue(req.Inputs), bestValue)
	result.ConvergenceInfo = fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations)
	return result, nil
}

func (s *Solver) converged(result *Result, value, savings float64, iterations int, info string) *Result {
	result.Success = true
	result.Iterations = iterations
	result.ConvergenceInfo = info
	result.BreakEvenValue = money(value)
	result.ResidualSavings = money(savings)
	result.ChangeFromBase = changeFromBase(result.Request.Target.BaseValue(result.Request.Inputs), value)
	return result
}

// savingsAt evaluates total savings with the target set to value
func (s *Solver) savingsAt(ctx context.Context, req Request, value float64) (float64, error) {
	inputs := apply(req.Inputs, req.Target, value)
	r, err := s.CalcEngine.Calculate(ctx, inputs)
	if err != nil {
		return 0, &BreakEvenError{
			Operation: "solve",
			Message:   fmt.Sprintf("failed to calculate %s=%g", req.Target, value),
			Cause:     err,
		}
	}
	savings := r.TCO.TotalSavings
	if math.IsNaN(savings) || math.IsInf(savings, 0) {
		return 0, &BreakEvenError{
			Operation: "solve",
			Message:   fmt.Sprintf("savings are undefined at %s=%g", req.Target, value),
		}
	}
	return savings, nil
}

func apply(inputs domain.CalculationInputs, target Target, value float64) domain.CalculationInputs {
	switch target {
	case TargetFTECost:
		inputs.FTECostPerYear = value
	case TargetDowntimeCost:
		inputs.DowntimeCostPerHour = value
	case TargetReferenceLicensing:
		inputs.ReferenceCostFactors.AnnualLicensingCost *= value
	case TargetLocations:
		n := int(value)
		inputs.Complexity.LocationCount = n
		inputs.Complexity.HasMultipleLocations = n > 1
	}
	return inputs
}

func changeFromBase(base, value float64) decimal.NullDecimal {
	if base == 0 {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat((value - base) / base * 100).Round(2))
}

func money(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(4)
}
