package compare

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rgehrsitz/nactco/internal/calculation"
	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/reference"
	"github.com/rgehrsitz/nactco/internal/transform"
)

// ErrNoVendors is returned when a vendor comparison has nothing left to compare
var ErrNoVendors = errors.New("no incumbent vendors to compare")

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	Catalog           *reference.Catalog
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine, catalog *reference.Catalog) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewCalculationEngine()
	}
	return &CompareEngine{
		CalcEngine:        calcEngine,
		Catalog:           catalog,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	Templates  []string // Built-in template names to apply
	ConfigPath string   // Source file, for display only
}

// Compare runs the base scenario and one variant per template
func (ce *CompareEngine) Compare(ctx context.Context, base config.Scenario, options CompareOptions) (*ComparisonSet, error) {
	baseName := base.Name
	if baseName == "" {
		baseName = "base"
	}

	baseResult, err := ce.run(ctx, baseName, base)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}

	alternatives := []ComparisonResult{}
	for _, templateName := range options.Templates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		modified, err := transform.ApplyTransforms(&base, template.Transforms)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}

		altResult, err := ce.run(ctx, baseName+"_"+template.Name, *modified)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", templateName, err)
		}
		altResult.Description = template.Description
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(*altResult, *baseResult))
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         baseResult,
		AlternativeResults: alternatives,
		ConfigPath:         options.ConfigPath,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// CompareVendors runs the base scenario once per incumbent vendor, concurrently.
// An empty vendorIDs compares every incumbent in the catalog; the reference
// vendor itself is skipped. Entries keep request order and carry their rank.
func (ce *CompareEngine) CompareVendors(ctx context.Context, base config.Scenario, vendorIDs []string) (*VendorComparison, error) {
	if ce.Catalog == nil {
		return nil, fmt.Errorf("catalog is required for vendor comparison")
	}

	defaulted := base.Clone().WithDefaults()
	if len(vendorIDs) == 0 {
		vendorIDs = ce.Catalog.IncumbentIDs()
	}

	ids := make([]string, 0, len(vendorIDs))
	for _, id := range vendorIDs {
		if id != defaulted.Reference {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, ErrNoVendors
	}

	entries := make([]ComparisonResult, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			s := defaulted.Clone()
			s.Incumbent = id
			result, err := ce.run(gctx, id, s)
			if err != nil {
				return fmt.Errorf("failed to calculate vendor %s: %w", id, err)
			}
			entries[i] = *result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rank(entries)

	vc := &VendorComparison{
		ScenarioName: defaulted.Name,
		Reference:    defaulted.Reference,
		Industry:     defaulted.Industry,
		Entries:      entries,
	}

	var recommended []string
	if industry, err := ce.Catalog.Industry(defaulted.Industry); err == nil {
		vc.Industry = industry.Name
		recommended = industry.RecommendedVendors
	}
	vc.Recommendations = GenerateVendorRecommendations(vc, recommended)

	return vc, nil
}

func (ce *CompareEngine) run(ctx context.Context, name string, s config.Scenario) (*ComparisonResult, error) {
	resolved, err := config.Resolve(ce.Catalog, s)
	if err != nil {
		return nil, err
	}

	result, err := ce.CalcEngine.Calculate(ctx, resolved.Inputs)
	if err != nil {
		return nil, err
	}

	metrics := ce.MetricsCalculator.CalculateMetrics(name, resolved.Scenario, result)
	return &metrics, nil
}
