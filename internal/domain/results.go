package domain

// CalculationInputs is the fully resolved input of a single two-party comparison.
// Every value the engine needs is carried here; nothing is looked up globally.
type CalculationInputs struct {
	IncumbentCostFactors CostFactors            `json:"incumbent_cost_factors"`
	ReferenceCostFactors CostFactors            `json:"reference_cost_factors"`
	IncumbentTimeline    ImplementationTimeline `json:"incumbent_timeline"`
	ReferenceTimeline    ImplementationTimeline `json:"reference_timeline"`
	Complexity           ComplexityFactors      `json:"complexity"`
	YearsToProject       int                    `json:"years_to_project"`
	FTECostPerYear       float64                `json:"fte_cost_per_year"`
	DowntimeCostPerHour  float64                `json:"downtime_cost_per_hour"`
}

// TcoResults holds the headline cost figures of a comparison
type TcoResults struct {
	IncumbentTCO          float64 `json:"incumbent_tco"`
	ReferenceTCO          float64 `json:"reference_tco"`
	TotalSavings          float64 `json:"total_savings"`
	SavingsPercentage     float64 `json:"savings_percentage"`
	AnnualSavings         float64 `json:"annual_savings"`
	InitialCostSavings    float64 `json:"initial_cost_savings"`
	IncumbentInitialCosts float64 `json:"incumbent_initial_costs"`
	IncumbentAnnualCosts  float64 `json:"incumbent_annual_costs"`
	ReferenceInitialCosts float64 `json:"reference_initial_costs"`
	ReferenceAnnualCosts  float64 `json:"reference_annual_costs"`
	ROI                   float64 `json:"roi"`
	PaybackPeriod         float64 `json:"payback_period_years"`
}

// ImplementationResults compares complexity-adjusted deployment durations in days
type ImplementationResults struct {
	IncumbentDays       float64 `json:"incumbent_days"`
	ReferenceDays       float64 `json:"reference_days"`
	DaysSaved           float64 `json:"days_saved"`
	DaysSavedPercentage float64 `json:"days_saved_percentage"`
}

// YearByYearData is one point of the cumulative cost projection
type YearByYearData struct {
	Year              string  `json:"year"`
	Incumbent         float64 `json:"incumbent"`
	Reference         float64 `json:"reference"`
	Savings           float64 `json:"savings"`
	CumulativeSavings float64 `json:"cumulative_savings"`
}

// CostBreakdownItem is a named cost category and its value over the horizon
type CostBreakdownItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Breakdown category names, in reporting order
const (
	CategoryHardware        = "Hardware"
	CategoryNetworkRedesign = "Network Redesign"
	CategoryImplementation  = "Implementation"
	CategoryTraining        = "Training"
	CategoryMaintenance     = "Maintenance"
	CategoryLicensing       = "Licensing"
	CategoryITStaff         = "IT Staff"
	CategoryDowntime        = "Downtime"
)

// BreakdownCategories is the fixed category order used for every party
var BreakdownCategories = []string{
	CategoryHardware,
	CategoryNetworkRedesign,
	CategoryImplementation,
	CategoryTraining,
	CategoryMaintenance,
	CategoryLicensing,
	CategoryITStaff,
	CategoryDowntime,
}

// ComparisonResult bundles every output of a two-party comparison
type ComparisonResult struct {
	IncumbentMultiplier float64               `json:"incumbent_multiplier"`
	ReferenceMultiplier float64               `json:"reference_multiplier"`
	TCO                 TcoResults            `json:"tco"`
	Implementation      ImplementationResults `json:"implementation"`
	YearByYear          []YearByYearData      `json:"year_by_year"`
	IncumbentBreakdown  []CostBreakdownItem   `json:"incumbent_breakdown"`
	ReferenceBreakdown  []CostBreakdownItem   `json:"reference_breakdown"`
}

// BreakdownTotal sums the values of a breakdown
func BreakdownTotal(items []CostBreakdownItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Value
	}
	return total
}
