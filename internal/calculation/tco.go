package calculation

import "github.com/rgehrsitz/nactco/internal/domain"

// PartyCosts are one party's complexity-adjusted cost figures
type PartyCosts struct {
	Multiplier float64 `json:"multiplier"`
	Initial    float64 `json:"initial"`
	Annual     float64 `json:"annual"`
	Total      float64 `json:"total"`
}

// InitialCosts sums the one-time cost factors
func InitialCosts(cf domain.CostFactors) float64 {
	return cf.InitialHardwareCost + cf.ImplementationServicesCost + cf.NetworkRedesignCost + cf.TrainingCost
}

// AnnualCosts sums the recurring cost factors, pricing staff and downtime at the given rates
func AnnualCosts(cf domain.CostFactors, fteCostPerYear, downtimeCostPerHour float64) float64 {
	return cf.AnnualMaintenanceCost +
		cf.AnnualLicensingCost +
		fteCostPerYear*cf.FTECount +
		downtimeCostPerHour*cf.EstimatedAnnualDowntimeHours
}

// ComputePartyCosts applies the multiplier and projects the total over years
func ComputePartyCosts(cf domain.CostFactors, multiplier, fteCostPerYear, downtimeCostPerHour float64, years int) PartyCosts {
	initial := InitialCosts(cf) * multiplier
	annual := AnnualCosts(cf, fteCostPerYear, downtimeCostPerHour) * multiplier
	return PartyCosts{
		Multiplier: multiplier,
		Initial:    initial,
		Annual:     annual,
		Total:      initial + annual*float64(years),
	}
}

// ImplementationDays is the complexity-adjusted total deployment duration
func ImplementationDays(tl domain.ImplementationTimeline, multiplier float64) float64 {
	return float64(tl.TotalDays()) * multiplier
}

// CostBreakdown splits a party's horizon cost into the fixed reporting categories
func CostBreakdown(cf domain.CostFactors, multiplier, fteCostPerYear, downtimeCostPerHour float64, years int) []domain.CostBreakdownItem {
	y := float64(years)
	return []domain.CostBreakdownItem{
		{Name: domain.CategoryHardware, Value: cf.InitialHardwareCost * multiplier},
		{Name: domain.CategoryNetworkRedesign, Value: cf.NetworkRedesignCost * multiplier},
		{Name: domain.CategoryImplementation, Value: cf.ImplementationServicesCost * multiplier},
		{Name: domain.CategoryTraining, Value: cf.TrainingCost * multiplier},
		{Name: domain.CategoryMaintenance, Value: cf.AnnualMaintenanceCost * y * multiplier},
		{Name: domain.CategoryLicensing, Value: cf.AnnualLicensingCost * y * multiplier},
		{Name: domain.CategoryITStaff, Value: fteCostPerYear * cf.FTECount * y * multiplier},
		{Name: domain.CategoryDowntime, Value: downtimeCostPerHour * cf.EstimatedAnnualDowntimeHours * y * multiplier},
	}
}
