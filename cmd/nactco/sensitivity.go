package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/nactco/internal/calculation"
	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/domain"
	"github.com/rgehrsitz/nactco/internal/output"
)

var (
	sensitivityFlags      scenarioFlags
	sensitivityParameters []string
	sensitivityFormat     string
)

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity [scenario-file]",
	Short: "Sweep scenario parameters and measure the effect on savings",
	Long: `Sweep one or more inputs across a range and report how TCO, savings, ROI and
payback respond. Without --parameter every default sweep runs.

Parameters: fte_cost, downtime_cost, years, legacy_pct, locations,
multiplier. A parameter may carry its own range as name:min-max:steps.

Examples:
  nactco sensitivity scenario.yaml
  nactco sensitivity scenario.yaml --parameter fte_cost --parameter years
  nactco sensitivity scenario.yaml --parameter fte_cost:50000-200000:6 --format csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSensitivity,
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	scenario, err := sensitivityFlags.loadScenario(args)
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(e.catalog, scenario)
	if err != nil {
		return err
	}

	params, err := parseParameters(resolved.Inputs, sensitivityParameters)
	if err != nil {
		return err
	}

	analyzer := calculation.NewSensitivityAnalyzer(e.engine)
	analysis, err := analyzer.Analyze(cmd.Context(), resolved.Scenario.Name, resolved.Inputs, params)
	if err != nil {
		return err
	}

	text, err := output.NewSensitivityFormatter(sensitivityFormat).FormatSensitivityAnalysis(analysis)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

// parseParameters resolves each spec against the default sweeps. A bare name
// keeps the default range; name:min-max[:steps] overrides it.
func parseParameters(inputs domain.CalculationInputs, specs []string) ([]domain.SensitivityParameter, error) {
	defaults := calculation.DefaultParameters(inputs)
	if len(specs) == 0 {
		return defaults, nil
	}

	byName := make(map[string]domain.SensitivityParameter, len(defaults))
	for _, p := range defaults {
		byName[p.Name] = p
	}

	params := make([]domain.SensitivityParameter, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		p, ok := byName[parts[0]]
		if !ok {
			return nil, fmt.Errorf("unknown sensitivity parameter: %s", parts[0])
		}
		if len(parts) > 3 {
			return nil, fmt.Errorf("invalid parameter spec %q, expected name:min-max:steps", spec)
		}

		if len(parts) >= 2 {
			bounds := strings.SplitN(parts[1], "-", 2)
			if len(bounds) != 2 {
				return nil, fmt.Errorf("invalid range %q, expected min-max", parts[1])
			}
			lo, err := strconv.ParseFloat(bounds[0], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid range minimum %q: %w", bounds[0], err)
			}
			hi, err := strconv.ParseFloat(bounds[1], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid range maximum %q: %w", bounds[1], err)
			}
			if lo > hi {
				return nil, fmt.Errorf("range minimum %g exceeds maximum %g", lo, hi)
			}
			p.MinValue, p.MaxValue = lo, hi
		}
		if len(parts) == 3 {
			steps, err := strconv.Atoi(parts[2])
			if err != nil || steps < 1 {
				return nil, fmt.Errorf("invalid step count %q", parts[2])
			}
			p.Steps = steps
		}
		params = append(params, p)
	}
	return params, nil
}

func init() {
	sensitivityFlags.register(sensitivityCmd)
	sensitivityCmd.Flags().StringArrayVar(&sensitivityParameters, "parameter", nil, "Parameter to sweep, optionally name:min-max:steps (repeatable)")
	sensitivityCmd.Flags().StringVarP(&sensitivityFormat, "format", "f", "console", "Output format (console, csv, json)")

	rootCmd.AddCommand(sensitivityCmd)
}
