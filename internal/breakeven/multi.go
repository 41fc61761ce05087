package breakeven

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/nactco/internal/domain"
)

// SolveAll runs the solver once per target and compares the outcomes.
// Targets without a break-even in their default range are listed as unreachable.
func (s *Solver) SolveAll(ctx context.Context, inputs domain.CalculationInputs, targets []Target) (*MultiResult, error) {
	if len(targets) == 0 {
		targets = AllTargets
	}

	multi := &MultiResult{
		Results:     []Result{},
		Unreachable: []Target{},
	}

	for _, target := range targets {
		req := Request{
			Inputs:        inputs,
			Target:        target,
			MaxIterations: s.Options.MaxIterations,
			Tolerance:     s.Options.Tolerance,
		}

		result, err := s.Solve(ctx, req)
		if err != nil {
			if errors.Is(err, ErrNoBreakEven) {
				multi.Unreachable = append(multi.Unreachable, target)
				continue
			}
			// Nothing to scale is not a failure of the whole run
			var beErr *BreakEvenError
			if errors.As(err, &beErr) && beErr.Operation == "validate_request" && beErr.Cause == nil {
				multi.Unreachable = append(multi.Unreachable, target)
				continue
			}
			return nil, fmt.Errorf("failed to solve %s: %w", target, err)
		}

		multi.Results = append(multi.Results, *result)
	}

	multi.Recommendations = s.generateRecommendations(multi)
	return multi, nil
}

// generateRecommendations summarizes how far each input must move before savings vanish
func (s *Solver) generateRecommendations(multi *MultiResult) []string {
	var recommendations []string

	for _, r := range multi.Results {
		rec := fmt.Sprintf("Savings vanish when %s reaches %s", r.Target, r.BreakEvenValue.StringFixed(2))
		if r.ChangeFromBase.Valid {
			rec += fmt.Sprintf(" (%s%% from today's value)", signed(r.ChangeFromBase.Decimal.StringFixed(1)))
		}
		recommendations = append(recommendations, rec)
	}

	if len(multi.Unreachable) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("No break-even within the tested ranges for %v", multi.Unreachable))
	}

	if len(multi.Results) == 0 {
		recommendations = append(recommendations, "⭐ The savings case holds across every tested input range")
	}

	return recommendations
}

func signed(s string) string {
	if len(s) > 0 && s[0] != '-' {
		return "+" + s
	}
	return s
}
