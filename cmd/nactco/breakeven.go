package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/nactco/internal/breakeven"
	"github.com/rgehrsitz/nactco/internal/config"
)

var (
	breakEvenFlags  scenarioFlags
	breakEvenTarget string
	breakEvenMin    float64
	breakEvenMax    float64
	breakEvenFormat string
)

var breakEvenCmd = &cobra.Command{
	Use:   "breakeven [scenario-file]",
	Short: "Find the input value at which total savings reach zero",
	Long: `Solve for the value of one input at which the reference vendor stops saving
money, by bisection over a search range. Without --target every target is solved.

Targets: ` + targetList() + `

Examples:
  nactco breakeven scenario.yaml
  nactco breakeven scenario.yaml --target reference_licensing
  nactco breakeven scenario.yaml --target fte_cost --min 0 --max 1000000 --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBreakEven,
}

func targetList() string {
	names := make([]string, len(breakeven.AllTargets))
	for i, t := range breakeven.AllTargets {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func runBreakEven(cmd *cobra.Command, args []string) error {
	if breakEvenFormat != "table" && breakEvenFormat != "json" {
		return fmt.Errorf("unknown format %q (available: table, json)", breakEvenFormat)
	}

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	scenario, err := breakEvenFlags.loadScenario(args)
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(e.catalog, scenario)
	if err != nil {
		return err
	}

	solver := breakeven.NewDefaultSolver(e.engine)
	out := cmd.OutOrStdout()
	table := &breakeven.TableFormatter{}
	jsonf := &breakeven.JSONFormatter{Pretty: true}

	if breakEvenTarget == "" {
		multi, err := solver.SolveAll(cmd.Context(), resolved.Inputs, nil)
		if err != nil {
			return err
		}
		if breakEvenFormat == "json" {
			text, err := jsonf.FormatMulti(multi)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, text)
			return nil
		}
		fmt.Fprint(out, table.FormatMulti(multi))
		return nil
	}

	target, err := breakeven.ParseTarget(breakEvenTarget)
	if err != nil {
		return err
	}
	req := breakeven.Request{Inputs: resolved.Inputs, Target: target}
	if cmd.Flags().Changed("min") {
		req.Bounds.Min = &breakEvenMin
	}
	if cmd.Flags().Changed("max") {
		req.Bounds.Max = &breakEvenMax
	}

	result, err := solver.Solve(cmd.Context(), req)
	if err != nil {
		return err
	}
	if breakEvenFormat == "json" {
		text, err := jsonf.Format(result)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
		return nil
	}
	fmt.Fprint(out, table.Format(result))
	return nil
}

func init() {
	breakEvenFlags.register(breakEvenCmd)
	breakEvenCmd.Flags().StringVarP(&breakEvenTarget, "target", "t", "", "Target to solve ("+targetList()+")")
	breakEvenCmd.Flags().Float64Var(&breakEvenMin, "min", 0, "Lower bound of the search range")
	breakEvenCmd.Flags().Float64Var(&breakEvenMax, "max", 0, "Upper bound of the search range")
	breakEvenCmd.Flags().StringVarP(&breakEvenFormat, "format", "f", "table", "Output format (table, json)")

	rootCmd.AddCommand(breakEvenCmd)
}
