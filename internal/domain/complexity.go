package domain

import "fmt"

// Level is a three-step categorical rating used for network and policy complexity
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Valid reports whether the level is low, medium or high
func (l Level) Valid() bool {
	return l.Rank() > 0
}

// Rank orders levels low < medium < high; unknown levels rank below low
func (l Level) Rank() int {
	switch l {
	case LevelLow:
		return 1
	case LevelMedium:
		return 2
	case LevelHigh:
		return 3
	}
	return 0
}

// ParseLevel converts a string into a Level
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.Valid() {
		return "", fmt.Errorf("invalid complexity level %q (want low, medium or high)", s)
	}
	return l, nil
}

// ComplexityFactors describes the deployment environment of a single calculation request
type ComplexityFactors struct {
	NetworkComplexity        Level   `yaml:"network_complexity" json:"network_complexity"`
	HasMultipleLocations     bool    `yaml:"has_multiple_locations" json:"has_multiple_locations"`
	LocationCount            int     `yaml:"location_count" json:"location_count"`
	HasComplexAuthentication bool    `yaml:"has_complex_authentication" json:"has_complex_authentication"`
	HasLegacyDevices         bool    `yaml:"has_legacy_devices" json:"has_legacy_devices"`
	LegacyDevicePercentage   float64 `yaml:"legacy_device_percentage" json:"legacy_device_percentage"`
	HasCloudIntegration      bool    `yaml:"has_cloud_integration" json:"has_cloud_integration"`
	HasCustomPolicies        bool    `yaml:"has_custom_policies" json:"has_custom_policies"`
	PolicyComplexity         Level   `yaml:"policy_complexity" json:"policy_complexity"`
}

// DefaultComplexityFactors returns a medium-complexity, single-site environment with no extra flags
func DefaultComplexityFactors() ComplexityFactors {
	return ComplexityFactors{
		NetworkComplexity: LevelMedium,
		LocationCount:     1,
		PolicyComplexity:  LevelMedium,
	}
}
