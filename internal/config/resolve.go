package config

import (
	"fmt"

	"github.com/rgehrsitz/nactco/internal/domain"
	"github.com/rgehrsitz/nactco/internal/reference"
)

// ResolvedScenario pairs a fully defaulted scenario with the engine inputs built from it
type ResolvedScenario struct {
	Scenario         Scenario
	Inputs           domain.CalculationInputs
	IndustryDefaults *domain.IndustryDefaults
}

// Resolve applies defaults, derives size and downtime cost from the catalog,
// validates, and assembles the calculation inputs.
func Resolve(cat *reference.Catalog, s Scenario) (*ResolvedScenario, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	scenario := s.Clone().WithDefaults()
	if err := ValidateScenario(scenario, cat); err != nil {
		return nil, err
	}

	resolved := &ResolvedScenario{}
	if scenario.Employees > 0 {
		defaults, err := cat.IndustryDefaults(scenario.Industry, scenario.Employees)
		if err != nil {
			return nil, fmt.Errorf("failed to derive industry defaults: %w", err)
		}
		resolved.IndustryDefaults = &defaults
		if scenario.DeviceCount == 0 {
			scenario.DeviceCount = defaults.DeviceCount
		}
		if scenario.DowntimeCostPerHour == nil {
			scenario.DowntimeCostPerHour = Float(defaults.DowntimeCostPerHour)
		}
	}
	if scenario.DowntimeCostPerHour == nil {
		scenario.DowntimeCostPerHour = Float(DefaultDowntimeCostPerHour)
	}

	if scenario.Size == "" {
		band, err := cat.SizeBandForDevices(scenario.DeviceCount)
		if err != nil {
			return nil, invalid("device_count", "%v", err)
		}
		scenario.Size = band.ID
	}

	incumbentCosts, err := cat.CostFactors(scenario.Incumbent, scenario.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve incumbent costs: %w", err)
	}
	referenceCosts, err := cat.CostFactors(scenario.Reference, scenario.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve reference costs: %w", err)
	}
	incumbentTimeline, err := cat.Timeline(scenario.Incumbent, scenario.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve incumbent timeline: %w", err)
	}
	referenceTimeline, err := cat.Timeline(scenario.Reference, scenario.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve reference timeline: %w", err)
	}

	resolved.Scenario = scenario
	resolved.Inputs = domain.CalculationInputs{
		IncumbentCostFactors: scenario.CustomFactors.Incumbent.Apply(incumbentCosts),
		ReferenceCostFactors: scenario.CustomFactors.Reference.Apply(referenceCosts),
		IncumbentTimeline:    incumbentTimeline,
		ReferenceTimeline:    referenceTimeline,
		Complexity:           scenario.Complexity,
		YearsToProject:       scenario.Years,
		FTECostPerYear:       *scenario.FTECost,
		DowntimeCostPerHour:  *scenario.DowntimeCostPerHour,
	}
	return resolved, nil
}
