package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/nactco/internal/compare"
	"github.com/rgehrsitz/nactco/internal/transform"
)

var (
	compareFlags         scenarioFlags
	compareWith          string
	compareVendors       string
	compareAllVendors    bool
	compareFormat        string
	compareListTemplates bool
)

var compareCmd = &cobra.Command{
	Use:   "compare [scenario-file]",
	Short: "Compare a scenario against what-if templates or other incumbents",
	Long: `Compare a base scenario against built-in what-if templates, or rank several
incumbent vendors against the reference vendor.

Examples:
  nactco compare scenario.yaml --with multi_site_5,legacy_heavy
  nactco compare scenario.yaml --with zero_trust,five_year --format csv
  nactco compare scenario.yaml --all-vendors
  nactco compare --vendors cisco,aruba,forescout --format json
  nactco compare --list-templates`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if compareListTemplates {
		templates := transform.CreateBuiltInTemplates()
		fmt.Fprintln(out, "Available templates:")
		for _, name := range templates.List() {
			t, _ := templates.Get(name)
			fmt.Fprintf(out, "  %-18s %s\n", name, t.Description)
		}
		return nil
	}

	byVendor := compareAllVendors || compareVendors != ""
	if !byVendor && compareWith == "" {
		return fmt.Errorf("--with, --vendors or --all-vendors is required (or use --list-templates)")
	}
	if byVendor && compareWith != "" {
		return fmt.Errorf("--with cannot be combined with --vendors or --all-vendors")
	}
	switch compareFormat {
	case "table", "csv", "json":
	default:
		return fmt.Errorf("unknown format %q (available: table, csv, json)", compareFormat)
	}

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	base, err := compareFlags.loadScenario(args)
	if err != nil {
		return err
	}
	ce := compare.NewCompareEngine(e.engine, e.catalog)

	if byVendor {
		var ids []string
		if !compareAllVendors {
			ids = splitList(compareVendors)
		}
		vc, err := ce.CompareVendors(cmd.Context(), base, ids)
		if err != nil {
			return err
		}
		var text string
		switch compareFormat {
		case "csv":
			text, err = (&compare.CSVFormatter{}).FormatVendors(vc)
		case "json":
			text, err = (&compare.JSONFormatter{Pretty: true}).FormatVendors(vc)
		default:
			text = (&compare.TableFormatter{}).FormatVendors(vc)
		}
		if err != nil {
			return err
		}
		fmt.Fprint(out, text)
		return nil
	}

	configPath := ""
	if len(args) > 0 {
		configPath = args[0]
	}
	set, err := ce.Compare(cmd.Context(), base, compare.CompareOptions{
		Templates:  splitList(compareWith),
		ConfigPath: configPath,
	})
	if err != nil {
		return err
	}

	var text string
	switch compareFormat {
	case "csv":
		text, err = (&compare.CSVFormatter{}).Format(set)
	case "json":
		text, err = (&compare.JSONFormatter{Pretty: true}).Format(set)
	default:
		text = (&compare.TableFormatter{}).Format(set)
	}
	if err != nil {
		return err
	}
	fmt.Fprint(out, text)
	return nil
}

// splitList splits a comma-separated flag value, dropping blanks
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func init() {
	compareFlags.register(compareCmd)
	compareCmd.Flags().StringVar(&compareWith, "with", "", "Comma-separated templates to compare against the base scenario")
	compareCmd.Flags().StringVar(&compareVendors, "vendors", "", "Comma-separated incumbent vendor ids to rank")
	compareCmd.Flags().BoolVar(&compareAllVendors, "all-vendors", false, "Rank every incumbent vendor in the catalog")
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().BoolVar(&compareListTemplates, "list-templates", false, "List all available scenario templates")

	rootCmd.AddCommand(compareCmd)
}
