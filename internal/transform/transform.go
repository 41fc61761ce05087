package transform

import (
	"fmt"

	"github.com/rgehrsitz/nactco/internal/config"
)

// ScenarioTransform defines the interface for all scenario transformations.
// Transforms are composable what-if edits used by scenario comparison,
// break-even analysis and the CLI.
type ScenarioTransform interface {
	// Apply returns a modified copy of base. The base scenario is never mutated.
	Apply(base *config.Scenario) (*config.Scenario, error)

	// Name returns a short identifier for this transform (e.g., "set_locations").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string

	// Validate checks the transform parameters against base without applying them.
	Validate(base *config.Scenario) error
}

// ApplyTransforms applies a sequence of transforms to a base scenario.
// Each transform receives the output of the previous one.
func ApplyTransforms(base *config.Scenario, transforms []ScenarioTransform) (*config.Scenario, error) {
	if base == nil {
		return nil, fmt.Errorf("base scenario cannot be nil")
	}

	current := base.Clone()
	for i, transform := range transforms {
		if transform == nil {
			return nil, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := transform.Validate(&current); err != nil {
			return nil, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(&current)
		if err != nil {
			return nil, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}
		current = *next
	}

	return &current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}

func requireBase(name string, base *config.Scenario) error {
	if base == nil {
		return NewTransformError(name, "validate", "base scenario cannot be nil", nil)
	}
	return nil
}

// edit clones base and runs fn on the copy
func edit(base *config.Scenario, fn func(s *config.Scenario)) (*config.Scenario, error) {
	modified := base.Clone()
	fn(&modified)
	return &modified, nil
}
