package transform

import (
	"fmt"

	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/domain"
)

// SetYears changes the projection horizon
type SetYears struct {
	Years int
}

func (t *SetYears) Name() string { return "set_years" }

func (t *SetYears) Description() string {
	return fmt.Sprintf("Project costs over %d years", t.Years)
}

func (t *SetYears) Validate(base *config.Scenario) error {
	if t.Years < 1 || t.Years > config.MaxYears {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("years must be between 1 and %d, got %d", config.MaxYears, t.Years), nil)
	}
	return requireBase(t.Name(), base)
}

func (t *SetYears) Apply(base *config.Scenario) (*config.Scenario, error) {
	return edit(base, func(s *config.Scenario) { s.Years = t.Years })
}

// SetSize pins the organization size band
type SetSize struct {
	Size domain.SizeBandID
}

func (t *SetSize) Name() string { return "set_size" }

func (t *SetSize) Description() string {
	return fmt.Sprintf("Use the %s size band", t.Size)
}

func (t *SetSize) Validate(base *config.Scenario) error {
	if !t.Size.Valid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown size band %q", t.Size), nil)
	}
	return requireBase(t.Name(), base)
}

func (t *SetSize) Apply(base *config.Scenario) (*config.Scenario, error) {
	return edit(base, func(s *config.Scenario) { s.Size = t.Size })
}

// SetIncumbent swaps the vendor being compared against the reference
type SetIncumbent struct {
	Vendor string
}

func (t *SetIncumbent) Name() string { return "set_incumbent" }

func (t *SetIncumbent) Description() string {
	return fmt.Sprintf("Compare %s against the reference vendor", t.Vendor)
}

func (t *SetIncumbent) Validate(base *config.Scenario) error {
	if t.Vendor == "" {
		return NewTransformError(t.Name(), "validate", "vendor cannot be empty", nil)
	}
	if err := requireBase(t.Name(), base); err != nil {
		return err
	}
	if t.Vendor == base.Reference {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("vendor %s is the reference vendor", t.Vendor), nil)
	}
	return nil
}

func (t *SetIncumbent) Apply(base *config.Scenario) (*config.Scenario, error) {
	return edit(base, func(s *config.Scenario) { s.Incumbent = t.Vendor })
}

// SetFTECost changes the annual cost of one IT FTE
type SetFTECost struct {
	Cost float64
}

func (t *SetFTECost) Name() string { return "set_fte_cost" }

func (t *SetFTECost) Description() string {
	return fmt.Sprintf("Price IT staff at %.0f per FTE-year", t.Cost)
}

func (t *SetFTECost) Validate(base *config.Scenario) error {
	if t.Cost < 0 {
		return NewTransformError(t.Name(), "validate", "cost must be non-negative", nil)
	}
	return requireBase(t.Name(), base)
}

func (t *SetFTECost) Apply(base *config.Scenario) (*config.Scenario, error) {
	return edit(base, func(s *config.Scenario) { s.FTECost = config.Float(t.Cost) })
}

// SetDowntimeCost changes the hourly cost of downtime
type SetDowntimeCost struct {
	Cost float64
}

func (t *SetDowntimeCost) Name() string { return "set_downtime_cost" }

func (t *SetDowntimeCost) Description() string {
	return fmt.Sprintf("Price downtime at %.0f per hour", t.Cost)
}

func (t *SetDowntimeCost) Validate(base *config.Scenario) error {
	if t.Cost < 0 {
		return NewTransformError(t.Name(), "validate", "cost must be non-negative", nil)
	}
	return requireBase(t.Name(), base)
}

func (t *SetDowntimeCost) Apply(base *config.Scenario) (*config.Scenario, error) {
	return edit(base, func(s *config.Scenario) { s.DowntimeCostPerHour = config.Float(t.Cost) })
}
