package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/output"
)

var (
	calculateFlags  scenarioFlags
	calculateFormat string
	calculateSave   bool
)

var calculateCmd = &cobra.Command{
	Use:   "calculate [scenario-file]",
	Short: "Calculate TCO, savings, ROI and payback for one scenario",
	Long: `Calculate a two-party NAC TCO comparison. The scenario file (YAML or HJSON)
is optional; flags override it and --transform applies what-if edits.

Examples:
  nactco calculate scenario.yaml
  nactco calculate --incumbent aruba --size large --years 5
  nactco calculate scenario.yaml --transform set_locations:count=5 --format markdown
  nactco calculate scenario.yaml --format xlsx --save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCalculate,
}

func runCalculate(cmd *cobra.Command, args []string) error {
	formatter := output.GetFormatterByName(calculateFormat)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %s)", calculateFormat,
			strings.Join(append(output.AvailableFormatterNames(), output.AvailableFormatAliases()...), ", "))
	}

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	scenario, err := calculateFlags.loadScenario(args)
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(e.catalog, scenario)
	if err != nil {
		return err
	}
	result, err := e.engine.Calculate(cmd.Context(), resolved.Inputs)
	if err != nil {
		return err
	}
	report, err := output.NewReport(e.catalog, resolved, result)
	if err != nil {
		return err
	}

	if calculateSave || formatter.Name() == "xlsx" {
		filename, err := output.WriteFormatted(formatter, report, fileExtension(formatter.Name()))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
		return nil
	}

	data, err := formatter.Format(report)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func fileExtension(format string) string {
	switch format {
	case "console":
		return "txt"
	case "markdown":
		return "md"
	default:
		return format
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate [scenario-file]",
	Short: "Validate a scenario file against the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.Close()

		scenario, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		resolved, err := config.Resolve(e.catalog, *scenario)
		if err != nil {
			return err
		}

		s := resolved.Scenario
		fmt.Fprintf(cmd.OutOrStdout(), "Scenario file %s is valid: %s vs %s, %s, %s, %d years\n",
			args[0], s.Incumbent, s.Reference, s.Size, s.Industry, s.Years)
		return nil
	},
}

func init() {
	calculateFlags.register(calculateCmd)
	calculateCmd.Flags().StringVarP(&calculateFormat, "format", "f", "console", "Output format (console, json, csv, markdown, html, xlsx)")
	calculateCmd.Flags().BoolVar(&calculateSave, "save", false, "Write the report to a timestamped file instead of stdout")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
}
