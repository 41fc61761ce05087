package config

import (
	"github.com/rgehrsitz/nactco/internal/domain"
)

// Scenario defaults
const (
	DefaultIncumbent           = "cisco"
	DefaultReference           = "portnox"
	DefaultSize                = domain.SizeMedium
	DefaultIndustry            = "technology"
	DefaultYears               = 3
	DefaultFTECost             = 100000.0
	DefaultDowntimeCostPerHour = 5000.0

	MaxYears = 30
)

// Scenario is a user-authored comparison request. Fields left empty take
// defaults; size and downtime cost may be derived from the catalog.
type Scenario struct {
	Name                string                   `yaml:"name" json:"name"`
	Incumbent           string                   `yaml:"incumbent" json:"incumbent"`
	Reference           string                   `yaml:"reference" json:"reference"`
	Size                domain.SizeBandID        `yaml:"size,omitempty" json:"size,omitempty"`
	DeviceCount         int                      `yaml:"device_count,omitempty" json:"device_count,omitempty"`
	Industry            string                   `yaml:"industry" json:"industry"`
	Employees           int                      `yaml:"employees,omitempty" json:"employees,omitempty"`
	Years               int                      `yaml:"years" json:"years"`
	FTECost             *float64                 `yaml:"fte_cost,omitempty" json:"fte_cost,omitempty"`
	DowntimeCostPerHour *float64                 `yaml:"downtime_cost_per_hour,omitempty" json:"downtime_cost_per_hour,omitempty"`
	Complexity          domain.ComplexityFactors `yaml:"complexity" json:"complexity"`
	CustomFactors       CustomFactors            `yaml:"custom_factors,omitempty" json:"custom_factors,omitempty"`
}

// CustomFactors overrides catalog cost factors per party
type CustomFactors struct {
	Incumbent *domain.CostFactorOverrides `yaml:"incumbent,omitempty" json:"incumbent,omitempty"`
	Reference *domain.CostFactorOverrides `yaml:"reference,omitempty" json:"reference,omitempty"`
}

// DefaultScenario returns a scenario with every default filled in
func DefaultScenario() Scenario {
	return Scenario{Name: "default"}.WithDefaults()
}

// WithDefaults returns a copy with static defaults applied. Size and downtime
// cost stay empty when they can be derived from device or employee counts.
func (s Scenario) WithDefaults() Scenario {
	out := s
	if out.Incumbent == "" {
		out.Incumbent = DefaultIncumbent
	}
	if out.Reference == "" {
		out.Reference = DefaultReference
	}
	if out.Industry == "" {
		out.Industry = DefaultIndustry
	}
	if out.Years == 0 {
		out.Years = DefaultYears
	}
	if out.FTECost == nil {
		v := DefaultFTECost
		out.FTECost = &v
	}
	if out.Size == "" && out.DeviceCount == 0 && out.Employees == 0 {
		out.Size = DefaultSize
	}
	if out.DowntimeCostPerHour == nil && out.Employees == 0 {
		v := DefaultDowntimeCostPerHour
		out.DowntimeCostPerHour = &v
	}

	if out.Complexity.NetworkComplexity == "" {
		out.Complexity.NetworkComplexity = domain.LevelMedium
	}
	if out.Complexity.PolicyComplexity == "" {
		out.Complexity.PolicyComplexity = domain.LevelMedium
	}
	if out.Complexity.LocationCount == 0 {
		out.Complexity.LocationCount = 1
	}
	return out
}

// Clone returns a deep copy so transforms never alias the original's pointers
func (s Scenario) Clone() Scenario {
	out := s
	out.FTECost = clonePtr(s.FTECost)
	out.DowntimeCostPerHour = clonePtr(s.DowntimeCostPerHour)
	out.CustomFactors.Incumbent = cloneOverrides(s.CustomFactors.Incumbent)
	out.CustomFactors.Reference = cloneOverrides(s.CustomFactors.Reference)
	return out
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneOverrides(o *domain.CostFactorOverrides) *domain.CostFactorOverrides {
	if o == nil {
		return nil
	}
	return &domain.CostFactorOverrides{
		InitialHardwareCost:          clonePtr(o.InitialHardwareCost),
		AnnualMaintenanceCost:        clonePtr(o.AnnualMaintenanceCost),
		AnnualLicensingCost:          clonePtr(o.AnnualLicensingCost),
		ImplementationServicesCost:   clonePtr(o.ImplementationServicesCost),
		TrainingCost:                 clonePtr(o.TrainingCost),
		NetworkRedesignCost:          clonePtr(o.NetworkRedesignCost),
		FTECount:                     clonePtr(o.FTECount),
		EstimatedAnnualDowntimeHours: clonePtr(o.EstimatedAnnualDowntimeHours),
	}
}

// Float returns a pointer to v, for building scenarios in code
func Float(v float64) *float64 {
	return &v
}
