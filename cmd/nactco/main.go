package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/nactco/internal/calculation"
	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/domain"
	"github.com/rgehrsitz/nactco/internal/logging"
	"github.com/rgehrsitz/nactco/internal/reference"
	"github.com/rgehrsitz/nactco/internal/transform"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	catalogPath string
	logLevel    string
	devLogging  bool
)

var rootCmd = &cobra.Command{
	Use:   "nactco",
	Short: "NAC total cost of ownership calculator",
	Long: `Compare the total cost of ownership of an incumbent Network Access Control
vendor against a reference vendor: multi-year TCO, savings, ROI, payback,
implementation time, sensitivity sweeps and break-even points.`,
	SilenceUsage: true,
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nactco %s (commit %s, built %s)\n", version, commit, date)
			if cat, err := reference.Load(catalogPath); err == nil {
				fmt.Fprintf(out, "catalog schema %s\n", cat.SchemaVersion())
			}
			if info := buildInfo(); info != "" {
				fmt.Fprintln(out, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

// env bundles what every calculating command needs
type env struct {
	catalog *reference.Catalog
	engine  *calculation.CalculationEngine
	logger  *zap.Logger
}

func (e *env) Close() {
	_ = e.logger.Sync()
}

// setup loads the catalog and wires a zap logger into the engine
func setup() (*env, error) {
	logger, err := logging.New(logLevel, devLogging)
	if err != nil {
		return nil, err
	}
	cat, err := reference.Load(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger.Sugar())
	return &env{catalog: cat, engine: engine, logger: logger}, nil
}

// scenarioFlags overlays command-line choices onto a scenario file
type scenarioFlags struct {
	incumbent  string
	reference  string
	size       string
	industry   string
	years      int
	transforms []string
}

func (f *scenarioFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.incumbent, "incumbent", "", "Incumbent vendor id (overrides the scenario file)")
	cmd.Flags().StringVar(&f.reference, "reference", "", "Reference vendor id (overrides the scenario file)")
	cmd.Flags().StringVar(&f.size, "size", "", "Organization size band: small, medium, large, enterprise")
	cmd.Flags().StringVar(&f.industry, "industry", "", "Industry id")
	cmd.Flags().IntVar(&f.years, "years", 0, "Years to project")
	cmd.Flags().StringArrayVar(&f.transforms, "transform", nil, "What-if transform, e.g. set_locations:count=5 (repeatable)")
}

// loadScenario reads the optional scenario file, applies flag overrides and transforms
func (f *scenarioFlags) loadScenario(args []string) (config.Scenario, error) {
	scenario := config.DefaultScenario()
	if len(args) > 0 {
		loaded, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return config.Scenario{}, err
		}
		scenario = *loaded
	}

	if f.incumbent != "" {
		scenario.Incumbent = f.incumbent
	}
	if f.reference != "" {
		scenario.Reference = f.reference
	}
	if f.size != "" {
		scenario.Size = domain.SizeBandID(f.size)
		scenario.DeviceCount = 0
		scenario.Employees = 0
	}
	if f.industry != "" {
		scenario.Industry = f.industry
	}
	if f.years != 0 {
		scenario.Years = f.years
	}

	if len(f.transforms) == 0 {
		return scenario, nil
	}
	transforms, err := transform.NewTransformRegistry().ParseTransformSpecs(f.transforms)
	if err != nil {
		return config.Scenario{}, err
	}
	transformed, err := transform.ApplyTransforms(&scenario, transforms)
	if err != nil {
		return config.Scenario{}, err
	}
	return *transformed, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", os.Getenv("NACTCO_CATALOG"), "Reference catalog YAML (default: embedded catalog)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&devLogging, "dev", false, "Human-readable development logging")

	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
