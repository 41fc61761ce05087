package domain

// SizeBandID identifies a discrete organization-size category
type SizeBandID string

const (
	SizeSmall      SizeBandID = "small"
	SizeMedium     SizeBandID = "medium"
	SizeLarge      SizeBandID = "large"
	SizeEnterprise SizeBandID = "enterprise"
)

// AllSizeBands lists the size bands in ascending order
var AllSizeBands = []SizeBandID{SizeSmall, SizeMedium, SizeLarge, SizeEnterprise}

// Valid reports whether the id names a known size band
func (s SizeBandID) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeEnterprise:
		return true
	}
	return false
}

// SizeBand describes the device-count range covered by a size category
type SizeBand struct {
	ID             SizeBandID `yaml:"id" json:"id"`
	MinDevices     int        `yaml:"min" json:"min_devices"`
	MaxDevices     int        `yaml:"max" json:"max_devices"`
	DefaultDevices int        `yaml:"default" json:"default_devices"`
}

// Contains reports whether the device count falls inside the band
func (b SizeBand) Contains(devices int) bool {
	return devices >= b.MinDevices && devices <= b.MaxDevices
}

// CostFactors holds one vendor's cost inputs for one size band.
// Monetary fields share a single currency unit.
type CostFactors struct {
	InitialHardwareCost          float64 `yaml:"initial_hardware_cost" json:"initial_hardware_cost"`
	AnnualMaintenanceCost        float64 `yaml:"annual_maintenance_cost" json:"annual_maintenance_cost"`
	AnnualLicensingCost          float64 `yaml:"annual_licensing_cost" json:"annual_licensing_cost"`
	ImplementationServicesCost   float64 `yaml:"implementation_services_cost" json:"implementation_services_cost"`
	TrainingCost                 float64 `yaml:"training_cost" json:"training_cost"`
	NetworkRedesignCost          float64 `yaml:"network_redesign_cost" json:"network_redesign_cost"`
	FTECount                     float64 `yaml:"fte_count" json:"fte_count"`
	EstimatedAnnualDowntimeHours float64 `yaml:"estimated_annual_downtime_hours" json:"estimated_annual_downtime_hours"`
}

// Negative returns the name of the first negative field, or "" if all fields are non-negative
func (c CostFactors) Negative() string {
	fields := []struct {
		name  string
		value float64
	}{
		{"initial_hardware_cost", c.InitialHardwareCost},
		{"annual_maintenance_cost", c.AnnualMaintenanceCost},
		{"annual_licensing_cost", c.AnnualLicensingCost},
		{"implementation_services_cost", c.ImplementationServicesCost},
		{"training_cost", c.TrainingCost},
		{"network_redesign_cost", c.NetworkRedesignCost},
		{"fte_count", c.FTECount},
		{"estimated_annual_downtime_hours", c.EstimatedAnnualDowntimeHours},
	}
	for _, f := range fields {
		if f.value < 0 {
			return f.name
		}
	}
	return ""
}

// CostFactorOverrides replaces individual catalog cost factors. Nil fields keep the catalog value.
type CostFactorOverrides struct {
	InitialHardwareCost          *float64 `yaml:"initial_hardware_cost,omitempty" json:"initial_hardware_cost,omitempty"`
	AnnualMaintenanceCost        *float64 `yaml:"annual_maintenance_cost,omitempty" json:"annual_maintenance_cost,omitempty"`
	AnnualLicensingCost          *float64 `yaml:"annual_licensing_cost,omitempty" json:"annual_licensing_cost,omitempty"`
	ImplementationServicesCost   *float64 `yaml:"implementation_services_cost,omitempty" json:"implementation_services_cost,omitempty"`
	TrainingCost                 *float64 `yaml:"training_cost,omitempty" json:"training_cost,omitempty"`
	NetworkRedesignCost          *float64 `yaml:"network_redesign_cost,omitempty" json:"network_redesign_cost,omitempty"`
	FTECount                     *float64 `yaml:"fte_count,omitempty" json:"fte_count,omitempty"`
	EstimatedAnnualDowntimeHours *float64 `yaml:"estimated_annual_downtime_hours,omitempty" json:"estimated_annual_downtime_hours,omitempty"`
}

// Apply returns a copy of base with every non-nil override applied
func (o *CostFactorOverrides) Apply(base CostFactors) CostFactors {
	if o == nil {
		return base
	}
	out := base
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&out.InitialHardwareCost, o.InitialHardwareCost)
	set(&out.AnnualMaintenanceCost, o.AnnualMaintenanceCost)
	set(&out.AnnualLicensingCost, o.AnnualLicensingCost)
	set(&out.ImplementationServicesCost, o.ImplementationServicesCost)
	set(&out.TrainingCost, o.TrainingCost)
	set(&out.NetworkRedesignCost, o.NetworkRedesignCost)
	set(&out.FTECount, o.FTECount)
	set(&out.EstimatedAnnualDowntimeHours, o.EstimatedAnnualDowntimeHours)
	return out
}

// IsEmpty reports whether no override is set
func (o *CostFactorOverrides) IsEmpty() bool {
	return o == nil || (o.InitialHardwareCost == nil && o.AnnualMaintenanceCost == nil &&
		o.AnnualLicensingCost == nil && o.ImplementationServicesCost == nil && o.TrainingCost == nil &&
		o.NetworkRedesignCost == nil && o.FTECount == nil && o.EstimatedAnnualDowntimeHours == nil)
}

// ImplementationTimeline holds the day counts for each deployment phase
type ImplementationTimeline struct {
	PlanningDays      int `yaml:"planning_days" json:"planning_days"`
	DeploymentDays    int `yaml:"deployment_days" json:"deployment_days"`
	IntegrationDays   int `yaml:"integration_days" json:"integration_days"`
	TestingDays       int `yaml:"testing_days" json:"testing_days"`
	StaffTrainingDays int `yaml:"staff_training_days" json:"staff_training_days"`
	RolloutDays       int `yaml:"rollout_days" json:"rollout_days"`
}

// TotalDays sums all six phases
func (t ImplementationTimeline) TotalDays() int {
	return t.PlanningDays + t.DeploymentDays + t.IntegrationDays + t.TestingDays + t.StaffTrainingDays + t.RolloutDays
}

// HasNegative reports whether any phase has a negative day count
func (t ImplementationTimeline) HasNegative() bool {
	return t.PlanningDays < 0 || t.DeploymentDays < 0 || t.IntegrationDays < 0 ||
		t.TestingDays < 0 || t.StaffTrainingDays < 0 || t.RolloutDays < 0
}
