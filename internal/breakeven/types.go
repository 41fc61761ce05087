package breakeven

import (
	"errors"
	"fmt"
	"math"

	"github.com/rgehrsitz/nactco/internal/domain"
	"github.com/shopspring/decimal"
)

// Target defines which input the solver moves
type Target string

const (
	TargetFTECost            Target = "fte_cost"
	TargetDowntimeCost       Target = "downtime_cost"
	TargetReferenceLicensing Target = "reference_licensing" // scale factor on the reference annual licensing
	TargetLocations          Target = "locations"
)

// AllTargets lists every solvable target in reporting order
var AllTargets = []Target{TargetFTECost, TargetDowntimeCost, TargetReferenceLicensing, TargetLocations}

// ErrNoBreakEven is the cause reported when savings keep one sign across the search range
var ErrNoBreakEven = errors.New("no break-even in range")

// ParseTarget converts a string into a Target
func ParseTarget(s string) (Target, error) {
	for _, t := range AllTargets {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown break-even target: %s", s)
}

// Integer reports whether the target only takes whole values
func (t Target) Integer() bool {
	return t == TargetLocations
}

// BaseValue returns the target's current value in the inputs
func (t Target) BaseValue(inputs domain.CalculationInputs) float64 {
	switch t {
	case TargetFTECost:
		return inputs.FTECostPerYear
	case TargetDowntimeCost:
		return inputs.DowntimeCostPerHour
	case TargetReferenceLicensing:
		return 1
	case TargetLocations:
		return float64(max(inputs.Complexity.LocationCount, 1))
	}
	return 0
}

// DefaultBounds returns the search range used when a request leaves it open
func DefaultBounds(t Target, inputs domain.CalculationInputs) (float64, float64) {
	switch t {
	case TargetFTECost:
		return 0, math.Max(4*inputs.FTECostPerYear, 400000)
	case TargetDowntimeCost:
		return 0, math.Max(10*inputs.DowntimeCostPerHour, 50000)
	case TargetReferenceLicensing:
		return 0, 20
	case TargetLocations:
		return 1, 25
	}
	return 0, 0
}

// Bounds optionally narrows the search range
type Bounds struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Request defines the parameters for a solver run
type Request struct {
	Inputs        domain.CalculationInputs
	Target        Target
	Bounds        Bounds
	MaxIterations int             // Maximum bisection steps
	Tolerance     decimal.Decimal // Savings within this distance of zero count as break-even
}

// Range resolves the effective search range
func (r *Request) Range() (float64, float64) {
	lo, hi := DefaultBounds(r.Target, r.Inputs)
	if r.Bounds.Min != nil {
		lo = *r.Bounds.Min
	}
	if r.Bounds.Max != nil {
		hi = *r.Bounds.Max
	}
	return lo, hi
}

// Validate checks that the request is internally consistent
func (r *Request) Validate() error {
	if _, err := ParseTarget(string(r.Target)); err != nil {
		return &BreakEvenError{Operation: "validate_request", Message: err.Error()}
	}

	lo, hi := r.Range()
	if lo >= hi {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   fmt.Sprintf("min (%g) must be less than max (%g)", lo, hi),
		}
	}
	if lo < 0 {
		return &BreakEvenError{Operation: "validate_request", Message: "min cannot be negative"}
	}
	if r.Target == TargetLocations && lo < 1 {
		return &BreakEvenError{Operation: "validate_request", Message: "locations must be at least 1"}
	}
	if r.Target == TargetReferenceLicensing && r.Inputs.ReferenceCostFactors.AnnualLicensingCost == 0 {
		return &BreakEvenError{Operation: "validate_request", Message: "reference has no licensing cost to scale"}
	}
	if r.MaxIterations < 0 {
		return &BreakEvenError{Operation: "validate_request", Message: "max iterations cannot be negative"}
	}
	if r.Tolerance.IsNegative() {
		return &BreakEvenError{Operation: "validate_request", Message: "tolerance cannot be negative"}
	}
	return nil
}

// Result contains the outcome of a solver run
type Result struct {
	Request         Request `json:"-"`
	Target          Target  `json:"target"`
	Success         bool    `json:"success"`
	Iterations      int     `json:"iterations"`
	ConvergenceInfo string  `json:"convergence_info"`
	SearchMin       float64 `json:"search_min"`
	SearchMax       float64 `json:"search_max"`

	BaseValue      decimal.Decimal     `json:"base_value"`
	BreakEvenValue decimal.Decimal     `json:"break_even_value"`
	ChangeFromBase decimal.NullDecimal `json:"change_from_base_pct"`

	BaseSavings     decimal.Decimal `json:"base_savings"`
	ResidualSavings decimal.Decimal `json:"residual_savings"`

	// First year index with non-negative cumulative savings at the base inputs, -1 if none
	PaybackYear int `json:"payback_year"`
}

// MultiResult collects one solver run per target
type MultiResult struct {
	Results         []Result `json:"results"`
	Unreachable     []Target `json:"unreachable"`
	Recommendations []string `json:"recommendations"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // Convergence tolerance in currency units
	MaxIterations int             // Maximum iterations
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromInt(1), // $1 tolerance
		MaxIterations: 100,
	}
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
