package config

import (
	"errors"
	"fmt"

	"github.com/rgehrsitz/nactco/internal/domain"
	"github.com/rgehrsitz/nactco/internal/reference"
)

// ValidationError names the scenario field that failed validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err wraps a *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ValidateScenario checks a scenario after defaults have been applied.
// Catalog membership checks run only when cat is non-nil.
func ValidateScenario(s Scenario, cat *reference.Catalog) error {
	if s.Years < 1 || s.Years > MaxYears {
		return invalid("years", "must be between 1 and %d, got %d", MaxYears, s.Years)
	}
	if s.FTECost != nil && *s.FTECost < 0 {
		return invalid("fte_cost", "must not be negative")
	}
	if s.DowntimeCostPerHour != nil && *s.DowntimeCostPerHour < 0 {
		return invalid("downtime_cost_per_hour", "must not be negative")
	}
	if s.Employees < 0 {
		return invalid("employees", "must not be negative")
	}
	if s.DeviceCount < 0 {
		return invalid("device_count", "must not be negative")
	}
	if s.Size != "" && !s.Size.Valid() {
		return invalid("size", "unknown size band %q", s.Size)
	}
	if s.Incumbent == s.Reference {
		return invalid("incumbent", "must differ from reference vendor %q", s.Reference)
	}

	if err := validateComplexity(s.Complexity); err != nil {
		return err
	}
	if err := validateOverrides("custom_factors.incumbent", s.CustomFactors.Incumbent); err != nil {
		return err
	}
	if err := validateOverrides("custom_factors.reference", s.CustomFactors.Reference); err != nil {
		return err
	}

	if cat == nil {
		return nil
	}
	if _, err := cat.Vendor(s.Incumbent); err != nil {
		return invalid("incumbent", "%v", err)
	}
	if _, err := cat.Vendor(s.Reference); err != nil {
		return invalid("reference", "%v", err)
	}
	if _, err := cat.Industry(s.Industry); err != nil {
		return invalid("industry", "%v", err)
	}
	if s.Size != "" {
		if _, err := cat.SizeBand(s.Size); err != nil {
			return invalid("size", "%v", err)
		}
	}
	return nil
}

func validateComplexity(cf domain.ComplexityFactors) error {
	if !cf.NetworkComplexity.Valid() {
		return invalid("complexity.network_complexity", "unknown level %q", cf.NetworkComplexity)
	}
	if !cf.PolicyComplexity.Valid() {
		return invalid("complexity.policy_complexity", "unknown level %q", cf.PolicyComplexity)
	}
	if cf.LocationCount < 1 {
		return invalid("complexity.location_count", "must be at least 1, got %d", cf.LocationCount)
	}
	if cf.LegacyDevicePercentage < 0 || cf.LegacyDevicePercentage > 100 {
		return invalid("complexity.legacy_device_percentage", "must be between 0 and 100, got %.2f", cf.LegacyDevicePercentage)
	}
	return nil
}

func validateOverrides(field string, o *domain.CostFactorOverrides) error {
	if o == nil {
		return nil
	}
	if name := o.Apply(domain.CostFactors{}).Negative(); name != "" {
		return invalid(field+"."+name, "must not be negative")
	}
	return nil
}
