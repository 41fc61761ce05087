package domain

// MetricCategory groups ROI metrics
type MetricCategory string

const (
	MetricFinancial   MetricCategory = "financial"
	MetricOperational MetricCategory = "operational"
	MetricSecurity    MetricCategory = "security"
	MetricCompliance  MetricCategory = "compliance"
	MetricStrategic   MetricCategory = "strategic"
)

// ROIMetric documents a value metric that reports can present.
// NPV and IRR are described here but never computed.
type ROIMetric struct {
	ID                    string             `yaml:"id" json:"id"`
	Name                  string             `yaml:"name" json:"name"`
	Description           string             `yaml:"description" json:"description"`
	Category              MetricCategory     `yaml:"category" json:"category"`
	MeasurementUnit       string             `yaml:"measurement_unit" json:"measurement_unit"`
	CalculationMethod     string             `yaml:"calculation_method" json:"calculation_method"`
	BenchmarkData         map[string]float64 `yaml:"benchmark_data,omitempty" json:"benchmark_data,omitempty"`
	IndustryAverage       *float64           `yaml:"industry_average,omitempty" json:"industry_average,omitempty"`
	IncludedInDefaultCalc bool               `yaml:"included_in_default_calc" json:"included_in_default_calc"`
}

// IndustryBenchmarks are published reference figures shown alongside results
type IndustryBenchmarks struct {
	AverageDataBreachCost     map[string]float64 `yaml:"average_data_breach_cost" json:"average_data_breach_cost"`
	SecurityIncidentFrequency map[string]float64 `yaml:"security_incident_frequency" json:"security_incident_frequency"`
	IncidentResponseHours     struct {
		WithNAC    float64 `yaml:"with_nac" json:"with_nac"`
		WithoutNAC float64 `yaml:"without_nac" json:"without_nac"`
	} `yaml:"incident_response_hours" json:"incident_response_hours"`
	CompliancePerDevice struct {
		Manual    float64 `yaml:"manual" json:"manual"`
		Automated float64 `yaml:"automated" json:"automated"`
	} `yaml:"compliance_cost_per_device" json:"compliance_cost_per_device"`
}
