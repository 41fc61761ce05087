package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/nactco/internal/domain"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("set_years", createSetYears)
	registry.Register("set_size", createSetSize)
	registry.Register("set_incumbent", createSetIncumbent)
	registry.Register("set_fte_cost", createSetFTECost)
	registry.Register("set_downtime_cost", createSetDowntimeCost)

	// Complexity transforms
	registry.Register("set_network_complexity", createSetNetworkComplexity)
	registry.Register("set_locations", createSetLocations)
	registry.Register("set_legacy", createSetLegacy)
	registry.Register("toggle_auth", createToggleAuth)
	registry.Register("toggle_cloud", createToggleCloud)
	registry.Register("set_policies", createSetPolicies)
	registry.Register("clear_policies", func(map[string]string) (ScenarioTransform, error) {
		return &ClearPolicies{}, nil
	})

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the sorted names of all registered transforms.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "set_locations:count=5"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// ParseTransformSpecs parses several specs, stopping at the first error
func (r *TransformRegistry) ParseTransformSpecs(specs []string) ([]ScenarioTransform, error) {
	transforms := make([]ScenarioTransform, 0, len(specs))
	for _, spec := range specs {
		t, err := r.ParseTransformSpec(spec)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, t)
	}
	return transforms, nil
}

// Factory functions for each transform

func param(transform string, params map[string]string, key string) (string, error) {
	v, ok := params[key]
	if !ok {
		return "", fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	return v, nil
}

func intParam(transform string, params map[string]string, key string) (int, error) {
	s, err := param(transform, params, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func floatParam(transform string, params map[string]string, key string) (float64, error) {
	s, err := param(transform, params, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// boolParam defaults to true when the key is absent
func boolParam(params map[string]string, key string) (bool, error) {
	s, ok := params[key]
	if !ok {
		return true, nil
	}
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid %s value: %q", key, s)
}

func levelParam(transform string, params map[string]string, key string) (domain.Level, error) {
	s, err := param(transform, params, key)
	if err != nil {
		return "", err
	}
	return domain.ParseLevel(strings.ToLower(s))
}

func createSetYears(params map[string]string) (ScenarioTransform, error) {
	years, err := intParam("set_years", params, "years")
	if err != nil {
		return nil, err
	}
	return &SetYears{Years: years}, nil
}

func createSetSize(params map[string]string) (ScenarioTransform, error) {
	size, err := param("set_size", params, "size")
	if err != nil {
		return nil, err
	}
	return &SetSize{Size: domain.SizeBandID(strings.ToLower(size))}, nil
}

func createSetIncumbent(params map[string]string) (ScenarioTransform, error) {
	vendor, err := param("set_incumbent", params, "vendor")
	if err != nil {
		return nil, err
	}
	return &SetIncumbent{Vendor: strings.ToLower(vendor)}, nil
}

func createSetFTECost(params map[string]string) (ScenarioTransform, error) {
	cost, err := floatParam("set_fte_cost", params, "cost")
	if err != nil {
		return nil, err
	}
	return &SetFTECost{Cost: cost}, nil
}

func createSetDowntimeCost(params map[string]string) (ScenarioTransform, error) {
	cost, err := floatParam("set_downtime_cost", params, "cost")
	if err != nil {
		return nil, err
	}
	return &SetDowntimeCost{Cost: cost}, nil
}

func createSetNetworkComplexity(params map[string]string) (ScenarioTransform, error) {
	level, err := levelParam("set_network_complexity", params, "level")
	if err != nil {
		return nil, err
	}
	return &SetNetworkComplexity{Level: level}, nil
}

func createSetLocations(params map[string]string) (ScenarioTransform, error) {
	count, err := intParam("set_locations", params, "count")
	if err != nil {
		return nil, err
	}
	return &SetLocations{Count: count}, nil
}

func createSetLegacy(params map[string]string) (ScenarioTransform, error) {
	pct, err := floatParam("set_legacy", params, "pct")
	if err != nil {
		return nil, err
	}
	return &SetLegacy{Percentage: pct}, nil
}

func createToggleAuth(params map[string]string) (ScenarioTransform, error) {
	enabled, err := boolParam(params, "enabled")
	if err != nil {
		return nil, err
	}
	return &ToggleAuth{Enabled: enabled}, nil
}

func createToggleCloud(params map[string]string) (ScenarioTransform, error) {
	enabled, err := boolParam(params, "enabled")
	if err != nil {
		return nil, err
	}
	return &ToggleCloud{Enabled: enabled}, nil
}

func createSetPolicies(params map[string]string) (ScenarioTransform, error) {
	level, err := levelParam("set_policies", params, "level")
	if err != nil {
		return nil, err
	}
	return &SetPolicies{Level: level}, nil
}
