package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/nactco/internal/domain"
)

var (
	catalogJSON     bool
	metricsCategory string
	employeesFlag   int
)

var vendorsCmd = &cobra.Command{
	Use:   "vendors [vendor-id]",
	Short: "List catalog vendors, or show one vendor with its feature scorecard",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.Close()
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			vendors := e.catalog.Vendors()
			if catalogJSON {
				return writeJSON(out, vendors)
			}
			fmt.Fprintf(out, "%-12s %-24s %-30s %s\n", "ID", "NAME", "PRODUCT", "DEPLOYMENT")
			for _, v := range vendors {
				marker := ""
				if v.ID == e.catalog.ReferenceVendorID() {
					marker = " (reference)"
				}
				fmt.Fprintf(out, "%-12s %-24s %-30s %s%s\n", v.ID, v.Name, v.ProductName,
					strings.Join(v.DeploymentModels, ", "), marker)
			}
			return nil
		}

		vendor, err := e.catalog.Vendor(args[0])
		if err != nil {
			return err
		}
		scores, err := e.catalog.FeatureScores(vendor.ID)
		if err != nil {
			return err
		}
		total, err := e.catalog.FeatureScoreTotal(vendor.ID)
		if err != nil {
			return err
		}
		if catalogJSON {
			return writeJSON(out, map[string]any{"vendor": vendor, "feature_scores": scores, "feature_total": total})
		}

		fmt.Fprintf(out, "%s (%s)\n", vendor.Name, vendor.ProductName)
		if vendor.Description != "" {
			fmt.Fprintf(out, "%s\n", vendor.Description)
		}
		fmt.Fprintf(out, "Deployment: %s\n\n", strings.Join(vendor.DeploymentModels, ", "))
		fmt.Fprintln(out, "FEATURE SCORECARD")
		fmt.Fprintln(out, strings.Repeat("-", 40))
		for _, f := range scores {
			fmt.Fprintf(out, "  %-28s %-12s %d/5\n", f.Feature, f.Rating.Value, f.Rating.Score)
		}
		fmt.Fprintf(out, "  %-28s %d\n", "Total", total)
		return nil
	},
}

var industriesCmd = &cobra.Command{
	Use:   "industries [industry-id]",
	Short: "List industry profiles, or show derived defaults for one industry",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.Close()
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			industries := e.catalog.Industries()
			if catalogJSON {
				return writeJSON(out, industries)
			}
			fmt.Fprintf(out, "%-16s %-28s %s\n", "ID", "NAME", "COMPLIANCE")
			for _, ind := range industries {
				fmt.Fprintf(out, "%-16s %-28s %s\n", ind.ID, ind.Name, strings.Join(ind.ComplianceNeeds, ", "))
			}
			return nil
		}

		if employeesFlag < 1 {
			industry, err := e.catalog.Industry(args[0])
			if err != nil {
				return err
			}
			if catalogJSON {
				return writeJSON(out, industry)
			}
			fmt.Fprintf(out, "%s\n%s\n", industry.Name, industry.Description)
			fmt.Fprintf(out, "Key requirements:    %s\n", strings.Join(industry.KeyRequirements, ", "))
			fmt.Fprintf(out, "Compliance:          %s\n", strings.Join(industry.ComplianceNeeds, ", "))
			fmt.Fprintf(out, "Recommended vendors: %s\n", strings.Join(industry.RecommendedVendors, ", "))
			return nil
		}

		defaults, err := e.catalog.IndustryDefaults(args[0], employeesFlag)
		if err != nil {
			return err
		}
		if catalogJSON {
			return writeJSON(out, defaults)
		}
		fmt.Fprintf(out, "Defaults for %s with %d employees\n", defaults.Industry, defaults.Employees)
		fmt.Fprintf(out, "  Devices:              %d\n", defaults.DeviceCount)
		fmt.Fprintf(out, "  Wireless:             %.0f%%\n", defaults.WirelessPercentage)
		fmt.Fprintf(out, "  BYOD:                 %.0f%%\n", defaults.BYODPercentage)
		fmt.Fprintf(out, "  IoT:                  %.0f%%\n", defaults.IoTPercentage)
		fmt.Fprintf(out, "  Downtime cost/hour:   $%.0f\n", defaults.DowntimeCostPerHour)
		return nil
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List ROI metric definitions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.Close()
		out := cmd.OutOrStdout()

		metrics := e.catalog.Metrics()
		if metricsCategory != "" {
			metrics = e.catalog.MetricsByCategory(domain.MetricCategory(metricsCategory))
		}
		if catalogJSON {
			return writeJSON(out, metrics)
		}
		fmt.Fprintf(out, "%-26s %-12s %-10s %s\n", "ID", "CATEGORY", "UNIT", "NAME")
		for _, m := range metrics {
			fmt.Fprintf(out, "%-26s %-12s %-10s %s\n", m.ID, m.Category, m.MeasurementUnit, m.Name)
		}
		return nil
	},
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	for _, cmd := range []*cobra.Command{vendorsCmd, industriesCmd, metricsCmd} {
		cmd.Flags().BoolVar(&catalogJSON, "json", false, "Print JSON instead of a table")
		rootCmd.AddCommand(cmd)
	}
	industriesCmd.Flags().IntVar(&employeesFlag, "employees", 0, "Derive device count and downtime cost for this many employees")
	metricsCmd.Flags().StringVar(&metricsCategory, "category", "", "Filter by category (financial, operational, security, compliance, strategic)")
}
