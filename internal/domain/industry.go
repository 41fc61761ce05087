package domain

// IndustryProfile holds sector benchmarks used to seed a scenario
type IndustryProfile struct {
	ID                 string   `yaml:"id" json:"id"`
	Name               string   `yaml:"name" json:"name"`
	Description        string   `yaml:"description" json:"description"`
	KeyRequirements    []string `yaml:"key_requirements" json:"key_requirements"`
	ComplianceNeeds    []string `yaml:"compliance_needs" json:"compliance_needs"`
	KeyMetrics         []string `yaml:"key_metrics" json:"key_metrics"`
	RecommendedVendors []string `yaml:"recommended_vendors" json:"recommended_vendors"`
	DeviceDensity      float64  `yaml:"device_density" json:"device_density"` // devices per employee
	WirelessPercentage float64  `yaml:"wireless_percentage" json:"wireless_percentage"`
	BYODPercentage     float64  `yaml:"byod_percentage" json:"byod_percentage"`
	IoTPercentage      float64  `yaml:"iot_percentage" json:"iot_percentage"`
	SecurityPriority   string   `yaml:"security_priority" json:"security_priority"`
	BreachImpact       string   `yaml:"breach_impact" json:"breach_impact"`
	DowntimeCostHourly float64  `yaml:"downtime_cost_hourly" json:"downtime_cost_hourly"` // per 100 employees
	ValueDrivers       []string `yaml:"value_drivers,omitempty" json:"value_drivers,omitempty"`
}

// IndustryDefaults are the scenario defaults derived from a profile and a headcount
type IndustryDefaults struct {
	Industry            string   `json:"industry"`
	Employees           int      `json:"employees"`
	DeviceCount         int      `json:"device_count"`
	WirelessPercentage  float64  `json:"wireless_percentage"`
	BYODPercentage      float64  `json:"byod_percentage"`
	IoTPercentage       float64  `json:"iot_percentage"`
	DowntimeCostPerHour float64  `json:"downtime_cost_per_hour"`
	ComplianceNeeds     []string `json:"compliance_needs"`
	RecommendedVendors  []string `json:"recommended_vendors"`
}
