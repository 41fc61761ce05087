package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v3"
)

// Format selects the scenario file syntax
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatHJSON Format = "hjson"
)

// FormatForPath picks the syntax from a file extension; anything but .hjson is YAML
func FormatForPath(filename string) Format {
	if strings.EqualFold(filepath.Ext(filename), ".hjson") {
		return FormatHJSON
	}
	return FormatYAML
}

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML or HJSON file
func (ip *InputParser) LoadFromFile(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	scenario, err := ip.Parse(data, FormatForPath(filename))
	if err != nil {
		return nil, err
	}
	if scenario.Name == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return scenario, nil
}

// Parse decodes a scenario, applies defaults and validates it without a catalog
func (ip *InputParser) Parse(data []byte, format Format) (*Scenario, error) {
	var scenario Scenario
	switch format {
	case FormatHJSON:
		if err := hjson.Unmarshal(data, &scenario); err != nil {
			return nil, fmt.Errorf("failed to parse HJSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &scenario); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	scenario = scenario.WithDefaults()
	if err := ValidateScenario(scenario, nil); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return &scenario, nil
}

// SaveToFile writes a scenario as YAML
func (ip *InputParser) SaveToFile(s *Scenario, filename string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
