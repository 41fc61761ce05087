package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/nactco/internal/domain"
	"github.com/rgehrsitz/nactco/internal/reference"
)

func TestValidateScenario(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *Scenario)
		field  string
	}{
		{"years too low", func(s *Scenario) { s.Years = -1 }, "years"},
		{"years too high", func(s *Scenario) { s.Years = 31 }, "years"},
		{"negative fte cost", func(s *Scenario) { s.FTECost = Float(-1) }, "fte_cost"},
		{"negative downtime", func(s *Scenario) { s.DowntimeCostPerHour = Float(-5) }, "downtime_cost_per_hour"},
		{"negative employees", func(s *Scenario) { s.Employees = -3 }, "employees"},
		{"negative devices", func(s *Scenario) { s.DeviceCount = -3 }, "device_count"},
		{"unknown size", func(s *Scenario) { s.Size = "huge" }, "size"},
		{"same vendors", func(s *Scenario) { s.Incumbent = s.Reference }, "incumbent"},
		{"unknown network level", func(s *Scenario) { s.Complexity.NetworkComplexity = "extreme" }, "complexity.network_complexity"},
		{"unknown policy level", func(s *Scenario) { s.Complexity.PolicyComplexity = "none" }, "complexity.policy_complexity"},
		{"zero locations", func(s *Scenario) { s.Complexity.LocationCount = 0 }, "complexity.location_count"},
		{"legacy over 100", func(s *Scenario) { s.Complexity.LegacyDevicePercentage = 101 }, "complexity.legacy_device_percentage"},
		{"legacy negative", func(s *Scenario) { s.Complexity.LegacyDevicePercentage = -1 }, "complexity.legacy_device_percentage"},
		{
			"negative override",
			func(s *Scenario) {
				s.CustomFactors.Reference = &domain.CostFactorOverrides{AnnualLicensingCost: Float(-10)}
			},
			"custom_factors.reference.annual_licensing_cost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultScenario()
			tt.modify(&s)

			err := ValidateScenario(s, nil)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestValidateScenario_Valid(t *testing.T) {
	assert.NoError(t, ValidateScenario(DefaultScenario(), nil))

	s := DefaultScenario()
	s.Years = MaxYears
	s.Complexity.LegacyDevicePercentage = 100
	s.FTECost = Float(0)
	assert.NoError(t, ValidateScenario(s, nil), "boundaries are inclusive")
}

func TestValidateScenario_WithCatalog(t *testing.T) {
	cat, err := reference.Default()
	require.NoError(t, err)

	assert.NoError(t, ValidateScenario(DefaultScenario(), cat))

	s := DefaultScenario()
	s.Incumbent = "acme"
	err = ValidateScenario(s, cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incumbent: vendor not found: acme")

	s = DefaultScenario()
	s.Industry = "mining"
	err = ValidateScenario(s, cat)
	assert.ErrorContains(t, err, "industry")
}
