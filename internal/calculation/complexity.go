package calculation

import (
	"math"

	"github.com/rgehrsitz/nactco/internal/domain"
)

// Complexity model weights
const (
	BaseMultiplier = 1.0

	LowNetworkFactor  = 0.9
	HighNetworkFactor = 1.3

	PerExtraLocation   = 0.1
	MaxLocationLoading = 1.0

	ComplexAuthLoading      = 0.15
	LegacyDeviceMaxLoading  = 0.3
	CloudIntegrationLoading = 0.10

	LowPolicyLoading    = 0.05
	MediumPolicyLoading = 0.15
	HighPolicyLoading   = 0.25
)

// ReferenceDampening is the share of complexity overhead the reference
// cloud-native party absorbs relative to the incumbent.
const ReferenceDampening = 0.4

// ComplexityMultiplier maps environment flags to a cost/time multiplier.
// The network level scales the base; every other flag adds on top of it.
// There is no upper bound. Inputs are assumed validated (location count >= 1,
// legacy percentage within 0..100).
func ComplexityMultiplier(cf domain.ComplexityFactors) float64 {
	m := BaseMultiplier

	switch cf.NetworkComplexity {
	case domain.LevelLow:
		m *= LowNetworkFactor
	case domain.LevelHigh:
		m *= HighNetworkFactor
	}

	if cf.HasMultipleLocations {
		m += math.Min(PerExtraLocation*float64(cf.LocationCount-1), MaxLocationLoading)
	}
	if cf.HasComplexAuthentication {
		m += ComplexAuthLoading
	}
	if cf.HasLegacyDevices {
		m += cf.LegacyDevicePercentage / 100 * LegacyDeviceMaxLoading
	}
	if cf.HasCloudIntegration {
		m += CloudIntegrationLoading
	}
	if cf.HasCustomPolicies {
		m += policyLoading(cf.PolicyComplexity)
	}

	return m
}

func policyLoading(level domain.Level) float64 {
	switch level {
	case domain.LevelLow:
		return LowPolicyLoading
	case domain.LevelMedium:
		return MediumPolicyLoading
	case domain.LevelHigh:
		return HighPolicyLoading
	}
	return 0
}

// DampenedMultiplier is the multiplier applied to the reference party
func DampenedMultiplier(raw float64) float64 {
	return 1 + (raw-1)*ReferenceDampening
}
