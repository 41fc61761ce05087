package transform

import (
	"fmt"

	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/domain"
)

// SetNetworkComplexity changes the network complexity level
type SetNetworkComplexity struct {
	Level domain.Level
}

func (t *SetNetworkComplexity) Name() string { return "set_network_complexity" }

func (t *SetNetworkComplexity) Description() string {
	return fmt.Sprintf("Set network complexity to %s", t.Level)
}

func (t *SetNetworkComplexity) Validate(base *config.Scenario) error {
	if !t.Level.Valid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown level %q", t.Level), nil)
	}
	return requireBase(t.Name(), base)
}

func (t *SetNetworkComplexity) Apply(base *config.Scenario) (*config.Scenario, error) {
	return edit(base, func(s *config.Scenario) { s.Complexity.NetworkComplexity = t.Level })
}

// SetLocations sets the site count; more than one site enables multi-location loading
type SetLocations struct {
	Count int
}

func (t *SetLocations) Name() string { return "set_locations" }

func (t *SetLocations) Description() string {
	return fmt.Sprintf("Deploy across %d locations", t.Count)
}

func (t *SetLocations) Validate(base *config.Scenario) error {
	if t.Count < 1 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("count must be at least 1, got %d", t.Count), nil)
	}
	return requireBase(t.Name(), base)
}

func (t *SetLocations) Apply(base *config.Scenario) (*config.Scenario, error) {
	return edit(base, func(s *config.Scenario) {
		s.Complexity.LocationCount = t.Count
		s.Complexity.HasMultipleLocations = t.Count > 1
	})
}

// SetLegacy sets the legacy device share; zero disables legacy loading
type SetLegacy struct {
	Percentage float64
}

func (t *SetLegacy) Name() string { return "set_legacy" }

func (t *SetLegacy) Description() string {
	return fmt.Sprintf("Assume %.0f%% legacy devices", t.Percentage)
}

func (t *SetLegacy) Validate(base *config.Scenario) error {
	if t.Percentage < 0 || t.Percentage > 100 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("percentage must be between 0 and 100, got %.2f", t.Percentage), nil)
	}
	return requireBase(t.Name(), base)
}

func (t *SetLegacy) Apply(base *config.Scenario) (*config.Scenario, error) {
	return edit(base, func(s *config.Scenario) {
		s.Complexity.HasLegacyDevices = t.Percentage > 0
		s.Complexity.LegacyDevicePercentage = t.Percentage
	})
}

// ToggleAuth turns complex authentication on or off
type ToggleAuth struct {
	Enabled bool
}

func (t *ToggleAuth) Name() string { return "toggle_auth" }

func (t *ToggleAuth) Description() string {
	return fmt.Sprintf("Complex authentication %s", onOff(t.Enabled))
}

func (t *ToggleAuth) Validate(base *config.Scenario) error {
	return requireBase(t.Name(), base)
}

func (t *ToggleAuth) Apply(base *config.Scenario) (*config.Scenario, error) {
	return edit(base, func(s *config.Scenario) { s.Complexity.HasComplexAuthentication = t.Enabled })
}

// ToggleCloud turns cloud integration on or off
type ToggleCloud struct {
	Enabled bool
}

func (t *ToggleCloud) Name() string { return "toggle_cloud" }

func (t *ToggleCloud) Description() string {
	return fmt.Sprintf("Cloud integration %s", onOff(t.Enabled))
}

func (t *ToggleCloud) Validate(base *config.Scenario) error {
	return requireBase(t.Name(), base)
}

func (t *ToggleCloud) Apply(base *config.Scenario) (*config.Scenario, error) {
	return edit(base, func(s *config.Scenario) { s.Complexity.HasCloudIntegration = t.Enabled })
}

// SetPolicies enables custom policies at a level
type SetPolicies struct {
	Level domain.Level
}

func (t *SetPolicies) Name() string { return "set_policies" }

func (t *SetPolicies) Description() string {
	return fmt.Sprintf("Use %s-complexity custom policies", t.Level)
}

func (t *SetPolicies) Validate(base *config.Scenario) error {
	if !t.Level.Valid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown level %q", t.Level), nil)
	}
	return requireBase(t.Name(), base)
}

func (t *SetPolicies) Apply(base *config.Scenario) (*config.Scenario, error) {
	return edit(base, func(s *config.Scenario) {
		s.Complexity.HasCustomPolicies = true
		s.Complexity.PolicyComplexity = t.Level
	})
}

// ClearPolicies disables custom policy loading
type ClearPolicies struct{}

func (t *ClearPolicies) Name() string        { return "clear_policies" }
func (t *ClearPolicies) Description() string { return "Disable custom policies" }

func (t *ClearPolicies) Validate(base *config.Scenario) error {
	return requireBase(t.Name(), base)
}

func (t *ClearPolicies) Apply(base *config.Scenario) (*config.Scenario, error) {
	return edit(base, func(s *config.Scenario) { s.Complexity.HasCustomPolicies = false })
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
